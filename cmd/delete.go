package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/cargoportl/cargoportl"
	"github.com/google/subcommands"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a full entry" }
func (*deleteCmd) Usage() string {
	return `cpl delete <shipment-id>

  Deletes the shipment and its linked client and invoice. The shipment id
  is authoritative; the companion ids are resolved locally and sent along
  so the server can cascade.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: cpl delete <shipment-id>")
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
		fmt.Fprintf(os.Stderr, "Shipment with ID %s not found.\n", id)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	keys := cargoportl.DeleteKeys{
		ShipmentID: detail.Shipment.ID,
		ClientID:   detail.Client.ID,
		InvoiceID:  detail.Invoice.ID,
	}
	if err := stores.DeleteEntry(ctx, keys); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting entry: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Shipment #%s deleted\n", keys.ShipmentID)
	return subcommands.ExitSuccess
}
