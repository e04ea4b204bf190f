package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cargoportl/cargoportl"
	"github.com/cargoportl/cargoportl/agent"
	"github.com/cargoportl/cargoportl/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct {
	currency string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `cpl assist [question]

  Starts an interactive session with the AI assistant. The assistant can
  read the dashboard, the revenue report and the record listings, and can
  search the web for freight market context.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "INR", "Currency code used in the reports the assistant reads.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst(c.analystFunctions())
	freight := agent.NewFreightExpert()
	a := agent.New(os.Stdout, os.Stdin, analyst, freight)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// analystFunctions exposes the dashboard pages to the Analyst. Each call
// rehydrates from the server so the assistant never reasons on stale data.
func (c *assistCmd) analystFunctions() []agent.Function {
	return []agent.Function{
		agent.NewReportFunc("dashboard", "The operations overview: shipment counts by status and transport mode.",
			func(ctx context.Context) (string, error) {
				stores := NewStores()
				if err := stores.Shipments.Load(ctx); err != nil {
					return "", err
				}
				return renderer.DashboardMarkdown(cargoportl.ShipmentStats(stores.Shipments.Authoritative())), nil
			}),
		agent.NewReportFunc("report", "The revenue report: totals, revenue by mode, monthly counts and the shipment table.",
			func(ctx context.Context) (string, error) {
				stores := NewStores()
				if err := loadAll(ctx, stores); err != nil {
					return "", err
				}
				return renderer.ReportMarkdown(buildReport(stores, c.currency)), nil
			}),
		agent.NewReportFunc("invoices", "Every invoice joined with its client and shipment.",
			func(ctx context.Context) (string, error) {
				stores := NewStores()
				if err := loadAll(ctx, stores); err != nil {
					return "", err
				}
				views := cargoportl.InvoiceComposites(
					stores.Invoices.Authoritative(),
					stores.Shipments.Authoritative(),
					stores.Clients.Authoritative(),
				)
				return renderer.InvoicesMarkdown(views, c.currency), nil
			}),
		agent.NewReportFunc("clients", "Every client with the shipments referencing it.",
			func(ctx context.Context) (string, error) {
				stores := NewStores()
				if err := loadAll(ctx, stores); err != nil {
					return "", err
				}
				views := cargoportl.ClientsWithShipments(
					stores.Clients.Authoritative(),
					stores.Shipments.Authoritative(),
				)
				return renderer.ClientsMarkdown(views), nil
			}),
	}
}
