package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/cargoportl/cargoportl"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
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

	invoiceStatus string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "create a full entry (client + shipment + invoice)" }
func (*addCmd) Usage() string {
	return `cpl add -client <name> -item <item> -mode <Air|Sea|Land> -fee <amount> [flags]

  Creates a new client, shipment and invoice in one request. The shipment
  id is computed locally as one past the highest loaded id (101 when the
  list is empty); the invoice mirrors the shipment's fee and date.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
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
	f.StringVar(&c.status, "status", "Pending", "Shipment status: Pending, Active or Completed.")
	f.StringVar(&c.fee, "fee", "0", "Shipping fee; the invoice amount mirrors it.")

	f.StringVar(&c.invoiceStatus, "invoice-status", "Unpaid", "Invoice status: Unpaid or Paid.")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fee, err := decimal.NewFromString(c.fee)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing fee %q: %v\n", c.fee, err)
		return subcommands.ExitUsageError
	}

	stores := NewStores()
	// the next shipment id depends on the freshly loaded list
	if err := stores.Shipments.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching shipments: %v\n", err)
		return subcommands.ExitFailure
	}
	next := cargoportl.NextShipmentID(stores.Shipments.Authoritative())

	entry := cargoportl.FullEntry{
		Client: cargoportl.Client{
			Name:     c.client,
			Phone:    c.phone,
			From:     c.from,
			To:       c.to,
			LastDate: c.lastDate,
		},
		Shipment: cargoportl.Shipment{
			ID:              cargoportl.ID(strconv.Itoa(next)),
			Item:            c.item,
			Mode:            cargoportl.Mode(c.mode),
			Departure:       c.departure,
			Destination:     c.destination,
			ReceiverName:    c.receiver,
			ReceiverAddress: c.address,
			Date:            c.date,
			Quantity:        c.quantity,
			Weight:          c.weight,
			Note:            c.note,
			Status:          cargoportl.ShipmentStatus(c.status),
			Fee:             fee,
		},
		// the invoice mirrors the shipment's fee and date at creation time
		Invoice: cargoportl.Invoice{
			Amount: fee,
			Date:   c.date,
			Status: cargoportl.InvoiceStatus(c.invoiceStatus),
		},
	}

	created, err := stores.CreateEntry(ctx, entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating entry: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Shipment #%s added successfully\n", created.Shipment.ID)
	return subcommands.ExitSuccess
}
