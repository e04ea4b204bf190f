package cargoportl

import "strings"

// Scope names the collection a header search applies to. The zero value
// matches no store and makes the dispatch a no-op.
type Scope int

const (
	ScopeNone Scope = iota
	ScopeClients
	ScopeShipments
	ScopeInvoices
)

// ParseScope resolves a page name to its search scope. Unknown pages get
// ScopeNone.
func ParseScope(page string) Scope {
	switch strings.ToLower(page) {
	case "clients":
		return ScopeClients
	case "shipments":
		return ScopeShipments
	case "invoices":
		return ScopeInvoices
	}
	return ScopeNone
}

func (s Scope) String() string {
	switch s {
	case ScopeClients:
		return "clients"
	case ScopeShipments:
		return "shipments"
	case ScopeInvoices:
		return "invoices"
	}
	return "none"
}

// Search routes one free-text query to exactly one store's filter. The
// query is lower-cased before dispatch; ScopeNone does nothing.
func (s *Stores) Search(scope Scope, query string) {
	query = strings.ToLower(query)
	switch scope {
	case ScopeClients:
		s.Clients.Search(query)
	case ScopeShipments:
		s.Shipments.Search(query)
	case ScopeInvoices:
		s.Invoices.Search(query)
	}
}
