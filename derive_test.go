package cargoportl

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNextShipmentID(t *testing.T) {
	testCases := []struct {
		name      string
		shipments []Shipment
		want      int
	}{
		{
			name:      "empty list starts the numbering",
			shipments: nil,
			want:      101,
		},
		{
			name:      "one past the highest id",
			shipments: []Shipment{{ID: "101"}, {ID: "103"}, {ID: "105"}},
			want:      106,
		},
		{
			name:      "order does not matter",
			shipments: []Shipment{{ID: "105"}, {ID: "101"}, {ID: "103"}},
			want:      106,
		},
		{
			name:      "non-numeric ids are ignored",
			shipments: []Shipment{{ID: "draft"}, {ID: "102"}},
			want:      103,
		},
		{
			name:      "only non-numeric ids fall back to the start",
			shipments: []Shipment{{ID: "draft"}},
			want:      101,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NextShipmentID(tc.shipments); got != tc.want {
				t.Errorf("NextShipmentID() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestClientsWithShipments(t *testing.T) {
	clients := []Client{
		{ID: "c1", Name: "Acme Corp"},
		{ID: "c2", Name: "Blue Ocean Traders"},
		{ID: "c3", Name: "Crimson Freight"},
	}
	shipments := []Shipment{
		{ID: "101", ClientID: "c1", Status: Active},
		{ID: "103", ClientID: "c2", Status: Pending},
		{ID: "105", ClientID: "c1", Status: Completed},
	}

	views := ClientsWithShipments(clients, shipments)
	if len(views) != 3 {
		t.Fatalf("ClientsWithShipments() len = %d, want every client, even without shipments", len(views))
	}
	if got := len(views[0].Shipments); got != 2 {
		t.Errorf("Acme shipments = %d, want 2", got)
	}
	if views[0].Shipments[0].ID != "101" || views[0].Shipments[1].ID != "105" {
		t.Errorf("Acme shipments order = %v, %v, want input order 101, 105", views[0].Shipments[0].ID, views[0].Shipments[1].ID)
	}
	if got := len(views[2].Shipments); got != 0 {
		t.Errorf("Crimson shipments = %d, want 0", got)
	}
}

func TestFilterClientViews(t *testing.T) {
	views := ClientsWithShipments(
		[]Client{{ID: "c1", Name: "Acme Corp"}, {ID: "c2", Name: "Blue Ocean Traders"}},
		[]Shipment{
			{ID: "101", ClientID: "c1", Status: Active},
			{ID: "103", ClientID: "c2", Status: Pending},
		},
	)

	testCases := []struct {
		status ShipmentStatus
		want   int
	}{
		{status: "All", want: 2},
		{status: "", want: 2},
		{status: Active, want: 1},
		{status: Completed, want: 0},
	}
	for _, tc := range testCases {
		if got := len(FilterClientViews(views, tc.status)); got != tc.want {
			t.Errorf("FilterClientViews(%q) len = %d, want %d", tc.status, got, tc.want)
		}
	}
}

func TestInvoiceComposites(t *testing.T) {
	invoices := []Invoice{
		{ID: "1", ShipmentID: "101", ClientID: "c1", Amount: decimal.NewFromInt(5000)},
		{ID: "2", ShipmentID: "999", ClientID: "missing", Amount: decimal.NewFromInt(10)},
	}
	shipments := []Shipment{{ID: "101", ClientID: "c1", Item: "Machinery"}}
	clients := []Client{{ID: "c1", Name: "Acme Corp"}}

	views := InvoiceComposites(invoices, shipments, clients)
	if len(views) != 2 {
		t.Fatalf("InvoiceComposites() len = %d, want 2", len(views))
	}
	if views[0].Shipment == nil || views[0].Shipment.Item != "Machinery" {
		t.Errorf("invoice 1 shipment = %v, want Machinery", views[0].Shipment)
	}
	if views[0].Client == nil || views[0].Client.Name != "Acme Corp" {
		t.Errorf("invoice 1 client = %v, want Acme Corp", views[0].Client)
	}
	// dangling links stay visible as nil, the invoice itself is never dropped
	if views[1].Shipment != nil {
		t.Errorf("invoice 2 shipment = %v, want nil", views[1].Shipment)
	}
	if views[1].Client != nil {
		t.Errorf("invoice 2 client = %v, want nil", views[1].Client)
	}
}

func TestShipmentDetail(t *testing.T) {
	shipments := []Shipment{{ID: "101", ClientID: "c1", Item: "Machinery"}}
	clients := []Client{{ID: "c1", Name: "Acme Corp"}}
	invoices := []Invoice{{ID: "1", ShipmentID: "101", ClientID: "c1"}}

	view, err := ShipmentDetail("101", shipments, clients, invoices)
	if err != nil {
		t.Fatalf("ShipmentDetail() error = %v", err)
	}
	if view.Client.Name != "Acme Corp" {
		t.Errorf("detail client = %q, want Acme Corp", view.Client.Name)
	}
	if view.Invoice.ID != "1" {
		t.Errorf("detail invoice = %q, want 1", view.Invoice.ID)
	}

	if _, err := ShipmentDetail("999", shipments, clients, invoices); !errors.Is(err, ErrNotFound) {
		t.Errorf("ShipmentDetail(999) error = %v, want ErrNotFound", err)
	}

	// missing companions are blank placeholders, not errors
	view, err = ShipmentDetail("101", shipments, nil, nil)
	if err != nil {
		t.Fatalf("ShipmentDetail() error = %v", err)
	}
	if !view.Client.ID.IsZero() || !view.Invoice.ID.IsZero() {
		t.Errorf("detail with no companions = %+v, want zero client and invoice", view)
	}
}

func TestMonthlyShipmentCounts(t *testing.T) {
	shipments := []Shipment{
		{ID: "101", Date: "2025-10-12"},
		{ID: "102", Date: "2025-11-02"},
		{ID: "103", Date: "2025-10-25"},
		{ID: "104", Date: "not a date"},
		{ID: "105", Date: ""},
	}

	counts := MonthlyShipmentCounts(shipments)
	want := []MonthCount{{Month: "Oct", Count: 2}, {Month: "Nov", Count: 1}}
	if len(counts) != len(want) {
		t.Fatalf("MonthlyShipmentCounts() = %v, want %v", counts, want)
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("counts[%d] = %v, want %v: months keep discovery order", i, counts[i], want[i])
		}
	}
}

func TestRevenueByMode(t *testing.T) {
	shipments := []Shipment{
		{ID: "101", Mode: Air, Fee: decimal.NewFromInt(5000)},
		{ID: "103", Mode: Sea, Fee: decimal.NewFromInt(1200)},
		{ID: "105", Mode: Air, Fee: decimal.NewFromInt(800)},
		{ID: "107", Mode: "Pigeon", Fee: decimal.NewFromInt(9)},
	}

	revenues := RevenueByMode(shipments)
	if len(revenues) != 3 {
		t.Fatalf("RevenueByMode() len = %d, want the 3 fixed modes", len(revenues))
	}
	wants := map[Mode]int64{Air: 5800, Sea: 1200, Land: 0}
	for _, r := range revenues {
		if want := decimal.NewFromInt(wants[r.Mode]); !r.Revenue.Equal(want) {
			t.Errorf("revenue[%s] = %s, want %s", r.Mode, r.Revenue, want)
		}
	}

	if total := TotalRevenue(shipments); !total.Equal(decimal.NewFromInt(7009)) {
		t.Errorf("TotalRevenue() = %s, want 7009: the total counts every shipment, even off-mode", total)
	}
}

func TestShipmentStats(t *testing.T) {
	shipments := []Shipment{
		{ID: "101", Mode: Air, Status: Active},
		{ID: "103", Mode: Sea, Status: Pending},
		{ID: "105", Mode: Land, Status: Completed},
		{ID: "107", Mode: Air, Status: Active},
	}

	stats := ShipmentStats(shipments)
	want := Stats{Total: 4, Active: 2, Pending: 1, Completed: 1, Air: 2, Sea: 1, Land: 1}
	if stats != want {
		t.Errorf("ShipmentStats() = %+v, want %+v", stats, want)
	}
}

func TestReportRows(t *testing.T) {
	shipments := []Shipment{
		{ID: "101", ClientID: "c1", Mode: Air, Status: Active, Fee: decimal.NewFromInt(5000), Date: "2025-10-12"},
		{ID: "103", ClientID: "missing"},
	}
	clients := []Client{{ID: "c1", Name: "Acme Corp"}}

	rows := ReportRows(shipments, clients)
	if len(rows) != 2 {
		t.Fatalf("ReportRows() len = %d, want 2", len(rows))
	}
	if rows[0].Client != "Acme Corp" {
		t.Errorf("rows[0].Client = %q, want Acme Corp", rows[0].Client)
	}
	got := rows[1]
	if got.Client != "Unknown" || got.Mode != "-" || got.Date != "-" || got.Status != Pending {
		t.Errorf("placeholder row = %+v, want Unknown/-/-/Pending", got)
	}
}
