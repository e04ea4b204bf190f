package renderer

import (
	"fmt"
	"strings"

	"github.com/cargoportl/cargoportl"
)

// DetailMarkdown renders the detail sheet for one shipment: the shipment
// block, the client block and the invoice block. Placeholder (zero) client
// or invoice records render as blank fields, matching the editable form.
func DetailMarkdown(view cargoportl.DetailView, currency string) string {
	var b strings.Builder
	s := view.Shipment

	fmt.Fprintf(&b, "# Shipment #%s\n\n", s.ID)

	fmt.Fprint(&b, "## Shipment\n\n")
	fmt.Fprintf(&b, "- Item: %s\n", orDash(s.Item))
	fmt.Fprintf(&b, "- Mode: %s\n", orDash(string(s.Mode)))
	fmt.Fprintf(&b, "- Route: %s to %s\n", orDash(s.Departure), orDash(s.Destination))
	fmt.Fprintf(&b, "- Receiver: %s, %s\n", orDash(s.ReceiverName), orDash(s.ReceiverAddress))
	fmt.Fprintf(&b, "- Date: %s\n", orDash(s.Date))
	fmt.Fprintf(&b, "- Quantity: %s, Weight: %s\n", orDash(s.Quantity), orDash(s.Weight))
	fmt.Fprintf(&b, "- Status: %s\n", orDash(string(s.Status)))
	fmt.Fprintf(&b, "- Fee: %s\n", money(s.Fee, currency))
	if s.Note != "" {
		fmt.Fprintf(&b, "- Note: %s\n", s.Note)
	}

	c := view.Client
	fmt.Fprint(&b, "\n## Client\n\n")
	fmt.Fprintf(&b, "- Name: %s (#%s)\n", orDash(c.Name), orDash(c.ID.String()))
	fmt.Fprintf(&b, "- Phone: %s\n", orDash(c.Phone))
	fmt.Fprintf(&b, "- Route: %s to %s\n", orDash(c.From), orDash(c.To))
	fmt.Fprintf(&b, "- Last Date: %s\n", orDash(c.LastDate))

	inv := view.Invoice
	fmt.Fprint(&b, "\n## Invoice\n\n")
	fmt.Fprintf(&b, "- ID: %s\n", orDash(inv.ID.String()))
	fmt.Fprintf(&b, "- Amount: %s\n", money(inv.Amount, currency))
	fmt.Fprintf(&b, "- Status: %s\n", orDash(string(inv.Status)))
	fmt.Fprintf(&b, "- Date: %s\n", orDash(inv.Date))

	return b.String()
}
