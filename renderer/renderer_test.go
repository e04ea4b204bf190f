package renderer

import (
	"strings"
	"testing"

	"github.com/cargoportl/cargoportl"
	"github.com/shopspring/decimal"
)

func contains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("rendered markdown misses %q:\n%s", want, got)
		}
	}
}

func TestDashboardMarkdown(t *testing.T) {
	stats := cargoportl.Stats{Total: 4, Active: 2, Pending: 1, Completed: 1, Air: 2, Sea: 1, Land: 1}

	got := DashboardMarkdown(stats)
	contains(t, got,
		"Dashboard Overview",
		"Total Shipments: 4",
		"Orders by Status",
		"Shipments by Mode",
		"Air Shipments", "Sea Shipments", "Land Shipments",
	)
}

func TestReportMarkdown(t *testing.T) {
	r := &Report{
		Stats:    cargoportl.Stats{Total: 2, Completed: 1, Pending: 1},
		Total:    cargoportl.M(decimal.NewFromInt(6200), "INR"),
		ByMode:   []cargoportl.ModeRevenue{{Mode: cargoportl.Air, Revenue: decimal.NewFromInt(5000)}},
		Monthly:  []cargoportl.MonthCount{{Month: "Oct", Count: 2}},
		Rows:     []cargoportl.ReportRow{{ID: "101", Client: "Acme Corp", Mode: "Air", Status: cargoportl.Active, Fee: decimal.NewFromInt(5000), Date: "2025-10-12"}},
		Currency: "INR",
	}

	got := ReportMarkdown(r)
	contains(t, got,
		"Key Figures",
		"| Total Shipments | 2 |",
		"Revenue by Mode",
		"Monthly Shipments",
		"| Oct | 2 |",
		"Acme Corp",
	)
}

func TestReportMarkdown_noDates(t *testing.T) {
	got := ReportMarkdown(&Report{Currency: "INR"})
	contains(t, got, "No dated shipments.")
}

func TestShipmentsMarkdown(t *testing.T) {
	shipments := []cargoportl.Shipment{
		{ID: "101", Item: "Machinery", Mode: cargoportl.Air, Departure: "Mumbai", Destination: "Rotterdam", Status: cargoportl.Active, Fee: decimal.NewFromInt(5000), Date: "2025-10-12"},
	}

	got := ShipmentsMarkdown(shipments, "INR")
	contains(t, got, "Machinery", "Mumbai to Rotterdam", "Active")

	got = ShipmentsMarkdown(nil, "INR")
	contains(t, got, "No shipments match.")
}

func TestClientsMarkdown(t *testing.T) {
	views := []cargoportl.ClientView{
		{
			Client:    cargoportl.Client{ID: "c1", Name: "Acme Corp", Phone: "555-0101", From: "Mumbai", To: "Rotterdam"},
			Shipments: []cargoportl.Shipment{{ID: "101", Item: "Machinery", Status: cargoportl.Active}},
		},
		{
			Client: cargoportl.Client{ID: "c3", Name: "Crimson Freight"},
		},
	}

	got := ClientsMarkdown(views)
	contains(t, got, "Acme Corp", "Mumbai to Rotterdam", "Machinery", "Crimson Freight")
}

func TestInvoicesMarkdown(t *testing.T) {
	shipment := cargoportl.Shipment{ID: "101", Item: "Machinery"}
	client := cargoportl.Client{ID: "c1", Name: "Acme Corp"}
	views := []cargoportl.InvoiceView{
		{
			Invoice:  cargoportl.Invoice{ID: "1", Amount: decimal.NewFromInt(5000), Status: cargoportl.Unpaid},
			Shipment: &shipment,
			Client:   &client,
		},
		{
			// dangling links render as N/A, the invoice stays visible
			Invoice: cargoportl.Invoice{ID: "2", Amount: decimal.NewFromInt(10), Status: cargoportl.Paid},
		},
	}

	got := InvoicesMarkdown(views, "INR")
	contains(t, got, "Acme Corp", "Unpaid", "N/A")
}

func TestDetailMarkdown(t *testing.T) {
	view := cargoportl.DetailView{
		Shipment: cargoportl.Shipment{ID: "101", Item: "Machinery", Mode: cargoportl.Air, Departure: "Mumbai", Destination: "Rotterdam", Status: cargoportl.Active, Fee: decimal.NewFromInt(5000)},
		Client:   cargoportl.Client{ID: "c1", Name: "Acme Corp"},
		Invoice:  cargoportl.Invoice{ID: "1", Amount: decimal.NewFromInt(5000), Status: cargoportl.Unpaid},
	}

	got := DetailMarkdown(view, "INR")
	contains(t, got, "Machinery", "Mumbai to Rotterdam", "Acme Corp", "Unpaid")

	// a shipment with no companions renders placeholders, never fails
	bare := cargoportl.DetailView{Shipment: cargoportl.Shipment{ID: "102"}}
	got = DetailMarkdown(bare, "INR")
	contains(t, got, "102")
}
