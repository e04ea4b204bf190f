package cargoportl

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ID is a record identifier. The cargo server is loose about id types:
// client ids are strings, shipment and invoice ids are numbers, and either
// representation can show up on the wire. ID keeps the raw text so that it
// can compare both ways without losing what the server sent.
type ID string

// UnmarshalJSON accepts both a JSON string and a JSON number.
func (id *ID) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*id = ID(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*id = ID(s)
	return nil
}

// MarshalJSON writes the id back the way the server assigned it: as a
// number when it is numeric, as a string otherwise.
func (id ID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.Atoi(string(id)); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Int returns the numeric value of the id, and whether it has one.
func (id ID) Int() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(string(id)))
	return n, err == nil
}

// NumEqual reports whether both ids are numeric and equal, the way the
// dashboard resolves shipment and invoice foreign keys.
func (id ID) NumEqual(other ID) bool {
	a, ok := id.Int()
	if !ok {
		return false
	}
	b, ok := other.Int()
	return ok && a == b
}

func (id ID) IsZero() bool   { return id == "" }
func (id ID) String() string { return string(id) }

// Mode is the transport mode of a shipment.
type Mode string

const (
	Air  Mode = "Air"
	Sea  Mode = "Sea"
	Land Mode = "Land"
)

// Modes lists all transport modes in display order.
var Modes = []Mode{Air, Sea, Land}

// ShipmentStatus is the delivery status of a shipment.
type ShipmentStatus string

const (
	Pending   ShipmentStatus = "Pending"
	Active    ShipmentStatus = "Active"
	Completed ShipmentStatus = "Completed"
)

// InvoiceStatus is the payment status of an invoice.
type InvoiceStatus string

const (
	Unpaid InvoiceStatus = "Unpaid"
	Paid   InvoiceStatus = "Paid"
)

// Client is a customer of the cargo service. It is referenced by
// Shipment.ClientID and Invoice.ClientID as a weak foreign key.
type Client struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	From     string `json:"from"`
	To       string `json:"to"`
	LastDate string `json:"lastDate"`
}

// Shipment is a single cargo movement. Ids are assigned client-side as
// one past the highest id currently loaded (see NextShipmentID).
type Shipment struct {
	ID              ID              `json:"id"`
	ClientID        ID              `json:"clientId"`
	Item            string          `json:"item"`
	Mode            Mode            `json:"mode"`
	Departure       string          `json:"departure"`
	Destination     string          `json:"destination"`
	ReceiverName    string          `json:"receiverName"`
	ReceiverAddress string          `json:"receiverAddress"`
	Date            string          `json:"date"`
	Quantity        string          `json:"quantity"`
	Weight          string          `json:"weight"`
	Note            string          `json:"note"`
	Status          ShipmentStatus  `json:"status"`
	Fee             decimal.Decimal `json:"fee"`
}

// Invoice bills a shipment. Amount and Date mirror the shipment's fee and
// date at creation time; they are independent records afterwards.
type Invoice struct {
	ID         ID              `json:"id"`
	ShipmentID ID              `json:"shipmentId"`
	ClientID   ID              `json:"clientId"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	Status     InvoiceStatus   `json:"status"`
}

// FullEntry is the composite business transaction the server creates,
// updates and deletes as one unit.
type FullEntry struct {
	Client   Client   `json:"client"`
	Shipment Shipment `json:"shipment"`
	Invoice  Invoice  `json:"invoice"`
}

// DeleteKeys identifies a full entry for deletion. The shipment id is
// authoritative; the companions let the server cascade.
type DeleteKeys struct {
	ShipmentID ID `json:"shipmentId"`
	ClientID   ID `json:"clientId"`
	InvoiceID  ID `json:"invoiceId"`
}
