package pricing

import (
	"errors"
	"math"
)

var (
	ErrNegativeDiscount      = errors.New("discount amount cannot be negative")
	ErrPercentOutOfRange     = errors.New("percentage discount must be between 0 and 100")
	ErrUnknownDiscountKind   = errors.New("unknown discount kind")
	ErrNonPositiveBasePrice  = errors.New("base price must be positive")
	ErrNegativeOverridePrice = errors.New("override price cannot be negative")
)

type Kind string

const (
	KindPercentage Kind = "percentage"
	KindFixed      Kind = "fixed"
)

func (k Kind) IsValid() bool {
	return k == KindPercentage || k == KindFixed
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrUnknownDiscountKind
	}
	return k, nil
}

// Discount is either a percentage of the base price or a fixed amount off,
// never both.
type Discount struct {
	kind        Kind
	percent     float64
	amountCents int64
}

func NewPercentageDiscount(percent float64) (Discount, error) {
	if percent < 0 || percent > 100 {
		return Discount{}, ErrPercentOutOfRange
	}
	return Discount{kind: KindPercentage, percent: percent}, nil
}

func NewFixedDiscount(amountCents int64) (Discount, error) {
	if amountCents < 0 {
		return Discount{}, ErrNegativeDiscount
	}
	return Discount{kind: KindFixed, amountCents: amountCents}, nil
}

func NewDiscount(kind Kind, amount float64) (Discount, error) {
	switch kind {
	case KindPercentage:
		return NewPercentageDiscount(amount)
	case KindFixed:
		return NewFixedDiscount(int64(math.Round(amount)))
	default:
		return Discount{}, ErrUnknownDiscountKind
	}
}

func ZeroDiscount() Discount {
	return Discount{kind: KindPercentage}
}

func (d Discount) Kind() Kind         { return d.kind }
func (d Discount) Percent() float64   { return d.percent }
func (d Discount) AmountCents() int64 { return d.amountCents }
func (d Discount) IsZero() bool       { return d.percent == 0 && d.amountCents == 0 }

// Magnitude reports the raw discount figure an admin entered: a percent for
// percentage discounts, cents for fixed ones.
func (d Discount) Magnitude() float64 {
	if d.kind == KindFixed {
		return float64(d.amountCents)
	}
	return d.percent
}

// PriceFor computes the effective price for a base price. The result is
// clamped at zero even if an out-of-range discount was forced in.
func (d Discount) PriceFor(baseCents int64) int64 {
	var result int64
	switch d.kind {
	case KindFixed:
		result = baseCents - d.amountCents
	default:
		result = int64(math.Round(float64(baseCents) * (1 - d.percent/100)))
	}
	if result < 0 {
		return 0
	}
	return result
}
