// Package money handles storefront amounts. Arithmetic is done on integer
// cents; decimal conversion happens only at display boundaries.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brl = message.NewPrinter(language.BrazilianPortuguese)

// Money is a display amount in a concrete currency.
type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func FromCents(cents int64) Money {
	return Money{
		Amount:   decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)),
		Currency: currency.BRL,
	}
}

// Format renders the amount with pt-BR separators, e.g. "R$ 1.234,56".
func (m Money) Format() string {
	f, _ := m.Amount.Round(2).Float64()
	return brl.Sprintf("%v %.2f", currency.Symbol(m.Currency), f)
}

// Cents converts back to integer cents after display rounding.
func (m Money) Cents() int64 {
	return m.Amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// Float64 is for JSON payloads that expose reais, not cents.
func (m Money) Float64() float64 {
	f, _ := m.Amount.Round(2).Float64()
	return f
}

// Installment returns the per-installment display amount for a total split
// into n parts, rounded to standard currency precision. No ledger is kept,
// so no cumulative-rounding correction is applied.
func Installment(totalCents int64, n int) Money {
	if n < 1 {
		n = 1
	}
	amount := decimal.NewFromInt(totalCents).
		Div(decimal.NewFromInt(int64(n))).
		Div(decimal.NewFromInt(100)).
		Round(2)
	return Money{Amount: amount, Currency: currency.BRL}
}
