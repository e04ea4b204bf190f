package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cargoportl/cargoportl"
	"github.com/cargoportl/cargoportl/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	currency string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the shipment reports overview" }
func (*reportCmd) Usage() string {
	return `cpl report [-currency <code>]

  Displays revenue by transport mode, monthly shipment counts, and the
  per-shipment report table.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "INR", "Currency code used to display revenue.")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stores := NewStores()
	if err := stores.Shipments.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching shipments: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := stores.Clients.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching clients: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ReportMarkdown(buildReport(stores, c.currency)))
	return subcommands.ExitSuccess
}

// buildReport derives the whole reports page from the current snapshots.
func buildReport(stores *cargoportl.Stores, currency string) *renderer.Report {
	shipments := stores.Shipments.Authoritative()
	clients := stores.Clients.Authoritative()
	return &renderer.Report{
		Stats:    cargoportl.ShipmentStats(shipments),
		Total:    cargoportl.M(cargoportl.TotalRevenue(shipments), currency),
		ByMode:   cargoportl.RevenueByMode(shipments),
		Monthly:  cargoportl.MonthlyShipmentCounts(shipments),
		Rows:     cargoportl.ReportRows(shipments, clients),
		Currency: currency,
	}
}
