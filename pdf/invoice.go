// Package pdf exports invoice composites as PDF documents.
package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/cargoportl/cargoportl"
)

// Invoice builds the PDF document for one invoice composite. Dangling
// client or shipment links render as "N/A" blocks; the export never fails
// on them.
func Invoice(view cargoportl.InvoiceView, currency string) (core.Document, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14, text.NewCol(12, "CargoPortl Invoice",
		props.Text{Size: 18, Style: fontstyle.Bold, Align: align.Center}))
	m.AddRow(8, text.NewCol(12, fmt.Sprintf("Invoice #%s (%s)", view.Invoice.ID, view.Invoice.Status),
		props.Text{Size: 12, Align: align.Center}))

	m.AddRow(10, text.NewCol(12, "Client", props.Text{Size: 12, Style: fontstyle.Bold}))
	client, from, to := "N/A", "N/A", "N/A"
	if view.Client != nil {
		client = view.Client.Name
		from, to = view.Client.From, view.Client.To
	}
	m.AddRow(6, text.NewCol(12, fmt.Sprintf("Name: %s", client), props.Text{Size: 10}))
	m.AddRow(6, text.NewCol(12, fmt.Sprintf("From: %s", from), props.Text{Size: 10}))
	m.AddRow(6, text.NewCol(12, fmt.Sprintf("To: %s", to), props.Text{Size: 10}))

	m.AddRow(10, text.NewCol(12, "Shipment", props.Text{Size: 12, Style: fontstyle.Bold}))
	if view.Shipment != nil {
		s := view.Shipment
		m.AddRow(6, text.NewCol(12, fmt.Sprintf("Shipment #%s: %s (%s)", s.ID, s.Item, s.Mode), props.Text{Size: 10}))
		m.AddRow(6, text.NewCol(12, fmt.Sprintf("Route: %s to %s", s.Departure, s.Destination), props.Text{Size: 10}))
		m.AddRow(6, text.NewCol(12, fmt.Sprintf("Receiver: %s, %s", s.ReceiverName, s.ReceiverAddress), props.Text{Size: 10}))
	} else {
		m.AddRow(6, text.NewCol(12, "N/A", props.Text{Size: 10}))
	}

	amount := cargoportl.M(view.Invoice.Amount, currency)
	m.AddRow(12, text.NewCol(12, fmt.Sprintf("Amount due: %s", amount),
		props.Text{Size: 14, Style: fontstyle.Bold}))
	m.AddRow(6, text.NewCol(12, fmt.Sprintf("Date: %s", view.Invoice.Date), props.Text{Size: 10}))

	return m.Generate()
}

// Save writes the invoice PDF to the given path.
func Save(view cargoportl.InvoiceView, currency, path string) error {
	doc, err := Invoice(view, currency)
	if err != nil {
		return fmt.Errorf("cannot generate invoice pdf: %w", err)
	}
	if err := doc.Save(path); err != nil {
		return fmt.Errorf("cannot save invoice pdf to %q: %w", path, err)
	}
	return nil
}
