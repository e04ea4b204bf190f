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

type shipmentsCmd struct {
	query    string
	currency string
}

func (*shipmentsCmd) Name() string     { return "shipments" }
func (*shipmentsCmd) Synopsis() string { return "list shipments" }
func (*shipmentsCmd) Usage() string {
	return `cpl shipments [-q <query>]

  Lists shipments. The query filters by shipment id, case-insensitively.
`
}

func (c *shipmentsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Filter shipments whose id contains the query.")
	f.StringVar(&c.currency, "currency", "INR", "Currency code used to display fees.")
}

func (c *shipmentsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stores := NewStores()
	if err := stores.Shipments.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching shipments: %v\n", err)
		return subcommands.ExitFailure
	}
	stores.Search(cargoportl.ScopeShipments, c.query)

	printMarkdown(renderer.ShipmentsMarkdown(stores.Shipments.Filtered(), c.currency))
	return subcommands.ExitSuccess
}
