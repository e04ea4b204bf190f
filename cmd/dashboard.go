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

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the operations overview" }
func (*dashboardCmd) Usage() string {
	return `cpl dashboard

  Displays shipment counts by status and transport mode.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stores := NewStores()
	if err := stores.Shipments.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching shipments: %v\n", err)
		return subcommands.ExitFailure
	}

	stats := cargoportl.ShipmentStats(stores.Shipments.Authoritative())
	printMarkdown(renderer.DashboardMarkdown(stats))
	return subcommands.ExitSuccess
}
