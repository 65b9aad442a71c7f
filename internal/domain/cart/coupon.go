package cart

import "strings"

// Coupon maps a code to a cart-wide fractional discount rate (0 < rate <= 1).
type Coupon struct {
	code string
	rate float64
}

func (c Coupon) Code() string  { return c.code }
func (c Coupon) Rate() float64 { return c.rate }
func (c Coupon) IsZero() bool  { return c.code == "" }

// The storefront's fixed coupon table. Codes are stored normalized and
// matched case-insensitively.
var coupons = map[string]float64{
	"DESCONTO10": 0.10,
	"DESCONTO20": 0.20,
	"PRIMEIRA":   0.15,
	"BLACK50":    0.50,
}

// LookupCoupon resolves a code against the fixed table. A miss is an
// expected user-input condition, not an error.
func LookupCoupon(code string) (Coupon, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	rate, ok := coupons[normalized]
	if !ok {
		return Coupon{}, false
	}
	return Coupon{code: normalized, rate: rate}, true
}

// ReconstructCoupon rebuilds a persisted coupon without a table lookup.
func ReconstructCoupon(code string, rate float64) Coupon {
	return Coupon{code: code, rate: rate}
}
