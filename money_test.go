package cargoportl

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_String(t *testing.T) {
	m := M(decimal.NewFromInt(5400), "INR")
	if got := m.String(); got != "₹5,400.00" {
		t.Errorf("String() = %q, want %q", got, "₹5,400.00")
	}
}

func TestMoney_Add(t *testing.T) {
	a := M(decimal.NewFromInt(100), "INR")
	b := M(decimal.NewFromInt(23), "")

	// the empty currency is weak, the sum keeps the named one
	if got := a.Add(b); !got.Equal(M(decimal.NewFromInt(123), "INR")) {
		t.Errorf("Add() = %v, want 123 INR", got)
	}
	if got := b.Add(a); got.Currency() != "INR" {
		t.Errorf("Add() currency = %q, want INR", got.Currency())
	}
}
