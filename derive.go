package cargoportl

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// This file holds the cross-collection joiners: pure functions over the
// stores' current snapshots. Nothing here is cached; every page recomputes
// its view from the lists it was given, so a view can never go stale
// relative to the stores.

// ErrNotFound reports a foreign key that cannot be resolved locally.
var ErrNotFound = errors.New("not found")

// ClientView is a client joined with the shipments that reference it.
type ClientView struct {
	Client    Client
	Shipments []Shipment
}

// InvoiceView is an invoice joined with its shipment and client. Either
// link may be nil when the foreign key dangles.
type InvoiceView struct {
	Invoice  Invoice
	Shipment *Shipment
	Client   *Client
}

// DetailView is the edit sheet for one shipment. Client and Invoice are
// zero-valued placeholders when no record matches, so the page renders
// blank editable fields instead of failing.
type DetailView struct {
	Client   Client
	Shipment Shipment
	Invoice  Invoice
}

// ClientsWithShipments attaches to every client the shipments whose
// clientId matches its id, preserving both input orders.
func ClientsWithShipments(clients []Client, shipments []Shipment) []ClientView {
	views := make([]ClientView, 0, len(clients))
	for _, c := range clients {
		v := ClientView{Client: c}
		for _, s := range shipments {
			if s.ClientID == c.ID {
				v.Shipments = append(v.Shipments, s)
			}
		}
		views = append(views, v)
	}
	return views
}

// FilterClientViews keeps the clients that have at least one shipment in
// the given status. The "All" status (or "") keeps everyone.
func FilterClientViews(views []ClientView, status ShipmentStatus) []ClientView {
	if status == "" || status == "All" {
		return views
	}
	kept := make([]ClientView, 0, len(views))
	for _, v := range views {
		for _, s := range v.Shipments {
			if s.Status == status {
				kept = append(kept, v)
				break
			}
		}
	}
	return kept
}

// InvoiceComposites joins every invoice with the first shipment whose id
// numerically equals the invoice's shipmentId, and the first client whose
// id equals the invoice's clientId. Ids are unique so duplicates are not
// expected; if any exist the first match in list order wins.
func InvoiceComposites(invoices []Invoice, shipments []Shipment, clients []Client) []InvoiceView {
	views := make([]InvoiceView, 0, len(invoices))
	for _, inv := range invoices {
		v := InvoiceView{Invoice: inv}
		for i := range shipments {
			if shipments[i].ID.NumEqual(inv.ShipmentID) {
				v.Shipment = &shipments[i]
				break
			}
		}
		for i := range clients {
			if clients[i].ID == inv.ClientID {
				v.Client = &clients[i]
				break
			}
		}
		views = append(views, v)
	}
	return views
}

// ShipmentDetail resolves the detail sheet for the shipment with the given
// id. A missing shipment is an ErrNotFound; missing client or invoice
// links yield zero-valued placeholders.
func ShipmentDetail(id ID, shipments []Shipment, clients []Client, invoices []Invoice) (DetailView, error) {
	var view DetailView
	found := false
	for _, s := range shipments {
		if s.ID.NumEqual(id) {
			view.Shipment = s
			found = true
			break
		}
	}
	if !found {
		return DetailView{}, fmt.Errorf("shipment %s: %w", id, ErrNotFound)
	}
	for _, c := range clients {
		if c.ID == view.Shipment.ClientID {
			view.Client = c
			break
		}
	}
	for _, inv := range invoices {
		if inv.ShipmentID.NumEqual(view.Shipment.ID) {
			view.Invoice = inv
			break
		}
	}
	return view, nil
}

// NextShipmentID returns the id to assign to the next shipment: one past
// the highest numeric id in the list, or 101 when the list is empty.
// Non-numeric ids are ignored. The result is derived, never stored:
// recompute it whenever the shipment list changes.
func NextShipmentID(shipments []Shipment) int {
	next := 101
	for _, s := range shipments {
		if n, ok := s.ID.Int(); ok && n+1 > next {
			next = n + 1
		}
	}
	return next
}

// MonthCount is the number of shipments dated in one month.
type MonthCount struct {
	Month string // short month name, e.g. "Oct"
	Count int
}

// shipmentDateLayouts are the formats the dashboard accepts for the
// free-text date fields.
var shipmentDateLayouts = []string{"2006-01-02", "2006-1-2", time.RFC3339, "01/02/2006"}

func parseShipmentDate(s string) (time.Time, bool) {
	for _, layout := range shipmentDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthlyShipmentCounts groups shipments by the short month name of their
// date, in discovery order. Shipments with a missing or unparseable date
// are excluded. No canonical month ordering is guaranteed; the chart
// renders months as they were first seen.
func MonthlyShipmentCounts(shipments []Shipment) []MonthCount {
	index := make(map[string]int)
	var counts []MonthCount
	for _, s := range shipments {
		t, ok := parseShipmentDate(s.Date)
		if !ok {
			continue
		}
		month := t.Month().String()[:3]
		if i, seen := index[month]; seen {
			counts[i].Count++
			continue
		}
		index[month] = len(counts)
		counts = append(counts, MonthCount{Month: month, Count: 1})
	}
	return counts
}

// ModeRevenue is the summed fee of all shipments in one transport mode.
type ModeRevenue struct {
	Mode    Mode
	Revenue decimal.Decimal
}

// RevenueByMode sums fees across shipments for the fixed set of transport
// modes. A shipment with a mode outside the set contributes nowhere; a
// missing fee counts as 0.
func RevenueByMode(shipments []Shipment) []ModeRevenue {
	revenues := make([]ModeRevenue, len(Modes))
	for i, m := range Modes {
		revenues[i].Mode = m
	}
	for _, s := range shipments {
		for i := range revenues {
			if s.Mode == revenues[i].Mode {
				revenues[i].Revenue = revenues[i].Revenue.Add(s.Fee)
			}
		}
	}
	return revenues
}

// TotalRevenue sums the fee of every shipment.
func TotalRevenue(shipments []Shipment) decimal.Decimal {
	var total decimal.Decimal
	for _, s := range shipments {
		total = total.Add(s.Fee)
	}
	return total
}

// Stats is the dashboard breakdown of the shipment list.
type Stats struct {
	Total     int
	Active    int
	Pending   int
	Completed int
	Air       int
	Sea       int
	Land      int
}

// ShipmentStats counts shipments by status and by transport mode.
func ShipmentStats(shipments []Shipment) Stats {
	stats := Stats{Total: len(shipments)}
	for _, s := range shipments {
		switch s.Status {
		case Active:
			stats.Active++
		case Pending:
			stats.Pending++
		case Completed:
			stats.Completed++
		}
		switch s.Mode {
		case Air:
			stats.Air++
		case Sea:
			stats.Sea++
		case Land:
			stats.Land++
		}
	}
	return stats
}

// ReportRow is one line of the shipment report table.
type ReportRow struct {
	ID     ID
	Client string
	Mode   string
	Status ShipmentStatus
	Fee    decimal.Decimal
	Date   string
}

// ReportRows joins every shipment with its client's name for the report
// table. Dangling client links show as "Unknown"; missing mode and date
// show as "-"; a missing status defaults to Pending.
func ReportRows(shipments []Shipment, clients []Client) []ReportRow {
	rows := make([]ReportRow, 0, len(shipments))
	for _, s := range shipments {
		row := ReportRow{ID: s.ID, Client: "Unknown", Mode: string(s.Mode), Status: s.Status, Fee: s.Fee, Date: s.Date}
		for _, c := range clients {
			if c.ID == s.ClientID {
				row.Client = c.Name
				break
			}
		}
		if row.Mode == "" {
			row.Mode = "-"
		}
		if row.Status == "" {
			row.Status = Pending
		}
		if row.Date == "" {
			row.Date = "-"
		}
		rows = append(rows, row)
	}
	return rows
}
