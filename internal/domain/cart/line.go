// Package cart models the shopping cart: one Line per (product, variant)
// pair plus at most one active coupon.
package cart

import "errors"

var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// Line is one distinct (product, variant) entry with its own quantity.
// Prices are deliberately absent: line totals are always resolved live
// against the price resolver so admin price changes apply retroactively.
type Line struct {
	productID string
	variant   string
	quantity  int
}

func NewLine(productID string, quantity int, variant string) (*Line, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	return &Line{productID: productID, variant: variant, quantity: quantity}, nil
}

func (l *Line) ProductID() string { return l.productID }
func (l *Line) Variant() string   { return l.variant }
func (l *Line) Quantity() int     { return l.quantity }

// Matches reports whether the line is the unique entry for the pair.
func (l *Line) Matches(productID, variant string) bool {
	return l.productID == productID && l.variant == variant
}

func (l *Line) Add(quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	l.quantity += quantity
	return nil
}

func (l *Line) SetQuantity(quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	l.quantity = quantity
	return nil
}
