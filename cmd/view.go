package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/cargoportl/cargoportl"
	"github.com/cargoportl/cargoportl/renderer"
	"github.com/google/subcommands"
)

type viewCmd struct {
	currency string
}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "display the detail sheet of one shipment" }
func (*viewCmd) Usage() string {
	return `cpl view <shipment-id>

  Displays the shipment with its linked client and invoice. Missing links
  render as blank fields; an unknown shipment id is reported distinctly.
`
}

func (c *viewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "INR", "Currency code used to display amounts.")
}

func (c *viewCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: cpl view <shipment-id>")
		return subcommands.ExitUsageError
	}
	id := cargoportl.ID(f.Arg(0))

	stores := NewStores()
	if err := loadAll(ctx, stores); err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching collections: %v\n", err)
		return subcommands.ExitFailure
	}

	detail, err := cargoportl.ShipmentDetail(id,
		stores.Shipments.Authoritative(),
		stores.Clients.Authoritative(),
		stores.Invoices.Authoritative(),
	)
	if errors.Is(err, cargoportl.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Shipment with ID %s not found. Run 'cpl shipments' to list known ids.\n", id)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DetailMarkdown(detail, c.currency))
	return subcommands.ExitSuccess
}
