package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cargoportl/cargoportl"
	"github.com/cargoportl/cargoportl/pdf"
	"github.com/google/subcommands"
)

type exportCmd struct {
	invoiceID string
	output    string
	currency  string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export one invoice as a PDF" }
func (*exportCmd) Usage() string {
	return `cpl export -i <invoice-id> [-o <file>]

  Writes the invoice, with its linked client and shipment, to a PDF file.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.invoiceID, "i", "", "Id of the invoice to export.")
	f.StringVar(&c.output, "o", "invoice.pdf", "Output file.")
	f.StringVar(&c.currency, "currency", "INR", "Currency code used to display the amount.")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.invoiceID == "" {
		fmt.Fprintln(os.Stderr, "Usage: cpl export -i <invoice-id> [-o <file>]")
		return subcommands.ExitUsageError
	}

	stores := NewStores()
	if err := loadAll(ctx, stores); err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching collections: %v\n", err)
		return subcommands.ExitFailure
	}

	views := cargoportl.InvoiceComposites(
		stores.Invoices.Authoritative(),
		stores.Shipments.Authoritative(),
		stores.Clients.Authoritative(),
	)
	for _, v := range views {
		if v.Invoice.ID == cargoportl.ID(c.invoiceID) {
			if err := pdf.Save(v, c.currency, c.output); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitFailure
			}
			fmt.Printf("Invoice #%s saved to %s\n", v.Invoice.ID, c.output)
			return subcommands.ExitSuccess
		}
	}

	fmt.Fprintf(os.Stderr, "Invoice with ID %s not found.\n", c.invoiceID)
	return subcommands.ExitFailure
}
