package request

import (
	"nexus-store/internal/domain/pricing"
)

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type ApplyDiscountRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Kind   string  `json:"kind" binding:"omitempty,oneof=percentage fixed"`
}

// EffectiveKind defaults to a percentage discount, the common admin flow.
func (r *ApplyDiscountRequest) EffectiveKind() pricing.Kind {
	if r.Kind == "" {
		return pricing.KindPercentage
	}
	return pricing.Kind(r.Kind)
}

type SetPriceRequest struct {
	PriceCents int64 `json:"price_cents" binding:"required,gt=0"`
}
