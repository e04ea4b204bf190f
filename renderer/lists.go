package renderer

import (
	"bytes"
	"fmt"

	"github.com/cargoportl/cargoportl"
	md "github.com/nao1215/markdown"
)

// ShipmentsMarkdown renders the shipments list page.
func ShipmentsMarkdown(shipments []cargoportl.Shipment, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Shipments")
	if len(shipments) == 0 {
		doc.PlainText("No shipments match.")
		return doc.String()
	}

	rows := make([][]string, 0, len(shipments))
	for _, s := range shipments {
		rows = append(rows, []string{
			s.ID.String(),
			orDash(s.Item),
			orDash(string(s.Mode)),
			orDash(s.Departure) + " to " + orDash(s.Destination),
			orDash(string(s.Status)),
			money(s.Fee, currency),
			orDash(s.Date),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Item", "Mode", "Route", "Status", "Fee", "Date"},
		Rows:   rows,
	})
	return doc.String()
}

// ClientsMarkdown renders the clients page: every client with its joined
// shipments.
func ClientsMarkdown(views []cargoportl.ClientView) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Clients")
	if len(views) == 0 {
		doc.PlainText("No clients match.")
		return doc.String()
	}

	for _, v := range views {
		doc.H2(fmt.Sprintf("%s (#%s)", v.Client.Name, v.Client.ID))
		doc.PlainText(fmt.Sprintf("Phone: %s, Route: %s to %s, Last: %s",
			orDash(v.Client.Phone), orDash(v.Client.From), orDash(v.Client.To), orDash(v.Client.LastDate)))

		if len(v.Shipments) == 0 {
			doc.PlainText("No shipments.")
			continue
		}
		rows := make([][]string, 0, len(v.Shipments))
		for _, s := range v.Shipments {
			rows = append(rows, []string{s.ID.String(), orDash(s.Item), orDash(string(s.Mode)), orDash(string(s.Status)), orDash(s.Date)})
		}
		doc.Table(md.TableSet{
			Header: []string{"ID", "Item", "Mode", "Status", "Date"},
			Rows:   rows,
		})
	}
	return doc.String()
}

// InvoicesMarkdown renders the invoices page: every invoice joined with
// its client and shipment. Dangling links show as "N/A", the page never
// fails on them.
func InvoicesMarkdown(views []cargoportl.InvoiceView, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Invoices")
	if len(views) == 0 {
		doc.PlainText("No invoices match.")
		return doc.String()
	}

	rows := make([][]string, 0, len(views))
	for _, v := range views {
		client, from, to := "N/A", "N/A", "N/A"
		if v.Client != nil {
			client, from, to = v.Client.Name, orDash(v.Client.From), orDash(v.Client.To)
		}
		shipment := "N/A"
		if v.Shipment != nil {
			shipment = v.Shipment.ID.String()
		}
		rows = append(rows, []string{
			v.Invoice.ID.String(),
			client,
			shipment,
			from + " to " + to,
			money(v.Invoice.Amount, currency),
			orDash(string(v.Invoice.Status)),
			orDash(v.Invoice.Date),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Client", "Shipment", "Route", "Amount", "Status", "Date"},
		Rows:   rows,
	})
	return doc.String()
}
