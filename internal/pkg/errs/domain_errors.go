package errs

import "errors"

// Domain-specific sentinel errors shared across the store layers
var (
	// Catalog errors
	ErrProductNotFound = errors.New("product not found")

	// Pricing errors
	ErrInvalidDiscountAmount = errors.New("invalid discount amount")
	ErrOverrideNotFound      = errors.New("price override not found")

	// Cart errors
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrCouponNotFound  = errors.New("coupon not found")
	ErrLineNotFound    = errors.New("cart line not found")

	// Checkout errors
	ErrCheckoutNotFound  = errors.New("checkout session not found")
	ErrStageInvalid      = errors.New("current stage is incomplete")
	ErrCheckoutSubmitted = errors.New("checkout already submitted")
	ErrEmptyCart         = errors.New("cart is empty")

	// Account errors
	ErrAccountNotFound   = errors.New("account not found")
	ErrDuplicateAccount  = errors.New("account already exists")
	ErrInvalidPassword   = errors.New("invalid credentials")
	ErrAccountUnverified = errors.New("account not verified")
	ErrTokenUnknown      = errors.New("verification token unknown")

	// External lookup errors
	ErrCepNotFound    = errors.New("cep not found")
	ErrCepUnavailable = errors.New("cep lookup unavailable")

	// Persistence errors
	ErrSnapshotCorrupt = errors.New("snapshot payload corrupt")
)
