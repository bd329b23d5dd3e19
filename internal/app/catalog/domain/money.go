package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money is an amount in whole currency units (pesos). Catalog prices carry no cents.
type Money int64

var arsPrinter = message.NewPrinter(language.MustParse("es-AR"))

// Times multiplies the amount by a quantity.
func (m Money) Times(quantity int) Money {
	return m * Money(quantity)
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m == 0
}

// IsNegative returns true if the amount is below zero.
func (m Money) IsNegative() bool {
	return m < 0
}

// String formats the amount the way the storefront shows prices, e.g. "$ 189.000".
func (m Money) String() string {
	if m < 0 {
		return arsPrinter.Sprintf("-$ %d", int64(-m))
	}
	return arsPrinter.Sprintf("$ %d", int64(m))
}
