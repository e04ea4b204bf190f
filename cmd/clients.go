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

type clientsCmd struct {
	query  string
	status string
}

func (*clientsCmd) Name() string     { return "clients" }
func (*clientsCmd) Synopsis() string { return "list clients with their shipments" }
func (*clientsCmd) Usage() string {
	return `cpl clients [-q <query>] [-status <status>]

  Lists every client with the shipments referencing it. The query filters
  by client name; -status keeps only clients with at least one shipment in
  that status (All, Active, Pending, Completed).
`
}

func (c *clientsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Filter clients whose name contains the query.")
	f.StringVar(&c.status, "status", "All", "Keep clients with a shipment in this status.")
}

func (c *clientsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stores := NewStores()
	if err := stores.Clients.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching clients: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := stores.Shipments.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching shipments: %v\n", err)
		return subcommands.ExitFailure
	}
	stores.Search(cargoportl.ScopeClients, c.query)

	views := cargoportl.ClientsWithShipments(stores.Clients.Filtered(), stores.Shipments.Authoritative())
	views = cargoportl.FilterClientViews(views, cargoportl.ShipmentStatus(c.status))

	printMarkdown(renderer.ClientsMarkdown(views))
	return subcommands.ExitSuccess
}
