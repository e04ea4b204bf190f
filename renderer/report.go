package renderer

import (
	"fmt"
	"strings"

	"github.com/cargoportl/cargoportl"
)

// Report is the fully derived data behind the reports page.
type Report struct {
	Stats    cargoportl.Stats
	Total    cargoportl.Money
	ByMode   []cargoportl.ModeRevenue
	Monthly  []cargoportl.MonthCount
	Rows     []cargoportl.ReportRow
	Currency string
}

// ReportMarkdown renders the shipment reports overview: KPI figures,
// revenue per transport mode, monthly shipment counts, and the
// per-shipment report table.
func ReportMarkdown(r *Report) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Shipment Reports Overview\n\n")
	fmt.Fprint(&b, "Visual insights into cargo flow, shipment modes, and revenue performance\n\n")

	fmt.Fprint(&b, "## Key Figures\n\n")
	fmt.Fprintln(&b, "| Figure | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Total Shipments | %d |\n", r.Stats.Total)
	fmt.Fprintf(&b, "| Completed Deliveries | %d |\n", r.Stats.Completed)
	fmt.Fprintf(&b, "| Pending Shipments | %d |\n", r.Stats.Pending)
	fmt.Fprintf(&b, "| Total Revenue | %s |\n", r.Total)

	fmt.Fprint(&b, "\n## Revenue by Mode\n\n")
	fmt.Fprintln(&b, "| Mode | Revenue |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, mr := range r.ByMode {
		fmt.Fprintf(&b, "| %s | %s |\n", mr.Mode, money(mr.Revenue, r.Currency))
	}

	fmt.Fprint(&b, "\n## Monthly Shipments\n\n")
	if len(r.Monthly) == 0 {
		fmt.Fprint(&b, "No dated shipments.\n")
	} else {
		fmt.Fprintln(&b, "| Month | Shipments |")
		fmt.Fprintln(&b, "|:---|---:|")
		for _, mc := range r.Monthly {
			fmt.Fprintf(&b, "| %s | %d |\n", mc.Month, mc.Count)
		}
	}

	fmt.Fprint(&b, "\n## Shipments\n\n")
	fmt.Fprintln(&b, "| ID | Client | Mode | Status | Revenue | Date |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|---:|:---|")
	for _, row := range r.Rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			row.ID, row.Client, row.Mode, row.Status, money(row.Fee, r.Currency), row.Date)
	}

	return b.String()
}
