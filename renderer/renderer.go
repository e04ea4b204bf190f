// Package renderer turns the dashboard's derived views into markdown. It
// holds no state: every function takes a fully derived view and returns a
// string ready for printMarkdown.
package renderer

import (
	"github.com/cargoportl/cargoportl"
	"github.com/shopspring/decimal"
)

// money formats an amount in the report's currency.
func money(amount decimal.Decimal, currency string) string {
	return cargoportl.M(amount, currency).String()
}

// orDash substitutes "-" for empty display fields.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
