package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/cargoportl/cargoportl"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type editCmd struct {
	flags *flag.FlagSet

	client   string
	phone    string
	from     string
	to       string
	lastDate string

	item        string
	mode        string
	departure   string
	destination string
	receiver    string
	address     string
	date        string
	quantity    string
	weight      string
	note        string
	status      string
	fee         string

	amount        string
	invoiceDate   string
	invoiceStatus string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "update a full entry from its detail sheet" }
func (*editCmd) Usage() string {
	return `cpl edit <shipment-id> [flags]

  Updates the full entry owning the given shipment. Only the fields named
  by flags change; everything else keeps its current server value. The
  invoice amount and date do not follow fee and date edits after creation,
  set them explicitly with -amount and -invoice-date if needed.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	c.flags = f

	f.StringVar(&c.client, "client", "", "Client name.")
	f.StringVar(&c.phone, "phone", "", "Client phone.")
	f.StringVar(&c.from, "from", "", "Client origin.")
	f.StringVar(&c.to, "to", "", "Client destination.")
	f.StringVar(&c.lastDate, "lastDate", "", "Client last shipping date.")

	f.StringVar(&c.item, "item", "", "Shipped item.")
	f.StringVar(&c.mode, "mode", "", "Transport mode: Air, Sea or Land.")
	f.StringVar(&c.departure, "departure", "", "Departure location.")
	f.StringVar(&c.destination, "destination", "", "Destination location.")
	f.StringVar(&c.receiver, "receiver", "", "Receiver name.")
	f.StringVar(&c.address, "address", "", "Receiver address.")
	f.StringVar(&c.date, "date", "", "Shipping date (YYYY-MM-DD).")
	f.StringVar(&c.quantity, "quantity", "", "Quantity.")
	f.StringVar(&c.weight, "weight", "", "Weight.")
	f.StringVar(&c.note, "note", "", "Free-form note.")
	f.StringVar(&c.status, "status", "", "Shipment status: Pending, Active or Completed.")
	f.StringVar(&c.fee, "fee", "", "Shipping fee.")

	f.StringVar(&c.amount, "amount", "", "Invoice amount.")
	f.StringVar(&c.invoiceDate, "invoice-date", "", "Invoice date.")
	f.StringVar(&c.invoiceStatus, "invoice-status", "", "Invoice status: Unpaid or Paid.")
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: cpl edit <shipment-id> [flags]")
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

	entry := cargoportl.FullEntry{Client: detail.Client, Shipment: detail.Shipment, Invoice: detail.Invoice}
	if status := c.apply(&entry); status != subcommands.ExitSuccess {
		return status
	}

	if _, err := stores.UpdateEntry(ctx, entry); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating entry: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Shipment #%s updated successfully\n", entry.Shipment.ID)
	return subcommands.ExitSuccess
}

// apply overlays the flags the user actually set onto the loaded entry.
func (c *editCmd) apply(entry *cargoportl.FullEntry) subcommands.ExitStatus {
	status := subcommands.ExitSuccess
	c.flags.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "client":
			entry.Client.Name = c.client
		case "phone":
			entry.Client.Phone = c.phone
		case "from":
			entry.Client.From = c.from
		case "to":
			entry.Client.To = c.to
		case "lastDate":
			entry.Client.LastDate = c.lastDate
		case "item":
			entry.Shipment.Item = c.item
		case "mode":
			entry.Shipment.Mode = cargoportl.Mode(c.mode)
		case "departure":
			entry.Shipment.Departure = c.departure
		case "destination":
			entry.Shipment.Destination = c.destination
		case "receiver":
			entry.Shipment.ReceiverName = c.receiver
		case "address":
			entry.Shipment.ReceiverAddress = c.address
		case "date":
			entry.Shipment.Date = c.date
		case "quantity":
			entry.Shipment.Quantity = c.quantity
		case "weight":
			entry.Shipment.Weight = c.weight
		case "note":
			entry.Shipment.Note = c.note
		case "status":
			entry.Shipment.Status = cargoportl.ShipmentStatus(c.status)
		case "fee":
			fee, err := decimal.NewFromString(c.fee)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing fee %q: %v\n", c.fee, err)
				status = subcommands.ExitUsageError
				return
			}
			entry.Shipment.Fee = fee
		case "amount":
			amount, err := decimal.NewFromString(c.amount)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
				status = subcommands.ExitUsageError
				return
			}
			entry.Invoice.Amount = amount
		case "invoice-date":
			entry.Invoice.Date = c.invoiceDate
		case "invoice-status":
			entry.Invoice.Status = cargoportl.InvoiceStatus(c.invoiceStatus)
		}
	})
	return status
}
