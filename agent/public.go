package agent

import (
	"context"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user runs a cargo operations desk: he is here primarily to understand his shipments,
			clients, invoices and revenue. Devise a plan of questions to ask each expert and come up
			with the best response to the user's request.

			The user will assume that you already looked at his current dashboard and reports.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewFreightExpert returns the expert for everything outside the user's
// own data: carriers, lanes, freight market news. It grounds its answers
// with Google Search.
func NewFreightExpert() *Expert {
	return &Expert{
		Name: "Freight",
		Description: `This is an expert in freight and logistics,
		well aware of carriers, shipping lanes, customs and transport market news.
		Ask Freight whenever you need recent or grounding information from outside the dashboard.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in freight and logistics. You can search and find anything related
			to carriers, shipping lanes, air, sea and land transport, customs and market conditions.
			You leverage Google Search to ground your assertions and relate the latest news to the
			user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert in charge of the user's own operations
// data. The provided functions expose the dashboard, reports and record
// listings to the model.
func NewAnalyst(functions []Function) *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He reads the user's operations data: the shipments,
		clients and invoices currently loaded from the cargo server, the dashboard figures and
		the revenue reports.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(functions)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's cargo operations data.
				You know how to use the Tools to extract the dashboard overview, the revenue
				report and the record listings. You are part of a team of experts; yours is
				everything about the user's own shipments, clients and invoices. Pardon their
				approximative language and figure out what they meant.
			`}}},
		},
		Library: NewLibrary(functions),
	}
}

// Func implements a simple Function.
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Do func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Do(ctx, id, args)
}

// NewReportFunc wraps a markdown report generator into a Function the
// Analyst can call.
func NewReportFunc(name, description string, render func(ctx context.Context) (string, error)) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The report in markdown.",
			},
		},
		Do: func(ctx context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{}}
			md, err := render(ctx)
			if err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}
			fresp.Response["output"] = md
			return fresp
		},
	}
}
