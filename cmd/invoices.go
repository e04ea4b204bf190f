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

type invoicesCmd struct {
	query    string
	currency string
}

func (*invoicesCmd) Name() string     { return "invoices" }
func (*invoicesCmd) Synopsis() string { return "list invoices with their shipment and client" }
func (*invoicesCmd) Usage() string {
	return `cpl invoices [-q <query>]

  Lists invoices joined with their linked shipment and client. The query
  filters by invoice id.
`
}

func (c *invoicesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Filter invoices whose id contains the query.")
	f.StringVar(&c.currency, "currency", "INR", "Currency code used to display amounts.")
}

func (c *invoicesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stores := NewStores()
	if err := loadAll(ctx, stores); err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching collections: %v\n", err)
		return subcommands.ExitFailure
	}
	stores.Search(cargoportl.ScopeInvoices, c.query)

	views := cargoportl.InvoiceComposites(
		stores.Invoices.Filtered(),
		stores.Shipments.Authoritative(),
		stores.Clients.Authoritative(),
	)
	printMarkdown(renderer.InvoicesMarkdown(views, c.currency))
	return subcommands.ExitSuccess
}

// loadAll rehydrates the three collections, the way every page mount does.
func loadAll(ctx context.Context, stores *cargoportl.Stores) error {
	if err := stores.Shipments.Load(ctx); err != nil {
		return err
	}
	if err := stores.Clients.Load(ctx); err != nil {
		return err
	}
	return stores.Invoices.Load(ctx)
}
