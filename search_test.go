package cargoportl

import (
	"context"
	"testing"
)

func TestParseScope(t *testing.T) {
	testCases := []struct {
		page string
		want Scope
	}{
		{page: "clients", want: ScopeClients},
		{page: "Clients", want: ScopeClients},
		{page: "shipments", want: ScopeShipments},
		{page: "invoices", want: ScopeInvoices},
		{page: "dashboard", want: ScopeNone},
		{page: "", want: ScopeNone},
	}
	for _, tc := range testCases {
		if got := ParseScope(tc.page); got != tc.want {
			t.Errorf("ParseScope(%q) = %v, want %v", tc.page, got, tc.want)
		}
	}
}

func TestStores_Search_dispatch(t *testing.T) {
	stores := NewStores(testFixtures())
	ctx := context.Background()
	for _, load := range []func(context.Context) error{stores.Clients.Load, stores.Shipments.Load, stores.Invoices.Load} {
		if err := load(ctx); err != nil {
			t.Fatalf("Load() error = %v", err)
		}
	}

	// exactly one store reacts to a scoped search
	stores.Search(ScopeClients, "Acme")
	if got := len(stores.Clients.Filtered()); got != 1 {
		t.Errorf("clients filtered = %d, want 1", got)
	}
	if got := len(stores.Shipments.Filtered()); got != 3 {
		t.Errorf("shipments filtered = %d, a clients search must not touch them", got)
	}
	if got := len(stores.Invoices.Filtered()); got != 2 {
		t.Errorf("invoices filtered = %d, a clients search must not touch them", got)
	}

	stores.Search(ScopeInvoices, "2")
	if got := len(stores.Invoices.Filtered()); got != 1 {
		t.Errorf("invoices filtered = %d, want 1", got)
	}

	// ScopeNone is a no-op, previous filters survive
	stores.Search(ScopeNone, "anything")
	if got := len(stores.Clients.Filtered()); got != 1 {
		t.Errorf("clients filtered = %d after ScopeNone search, want the previous 1", got)
	}
	if got := len(stores.Invoices.Filtered()); got != 1 {
		t.Errorf("invoices filtered = %d after ScopeNone search, want the previous 1", got)
	}
}
