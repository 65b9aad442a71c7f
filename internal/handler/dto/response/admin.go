package response

import (
	"nexus-store/internal/domain/pricing"
	"nexus-store/internal/pkg/money"
)

type OverrideResponse struct {
	ProductID          string  `json:"product_id"`
	OriginalPriceCents int64   `json:"original_price_cents"`
	CurrentPriceCents  int64   `json:"current_price_cents"`
	CurrentFormatted   string  `json:"current_formatted"`
	Discount           float64 `json:"discount"`
	DiscountKind       string  `json:"discount_kind"`
	Active             bool    `json:"active"`
}

func FromQuote(q pricing.Quote) *OverrideResponse {
	return &OverrideResponse{
		ProductID:          q.ProductID,
		OriginalPriceCents: q.OriginalPriceCents,
		CurrentPriceCents:  q.CurrentPriceCents,
		CurrentFormatted:   money.FromCents(q.CurrentPriceCents).Format(),
		Discount:           q.Discount,
		DiscountKind:       string(q.DiscountKind),
		Active:             q.Active,
	}
}

func FromQuoteList(quotes []pricing.Quote) []*OverrideResponse {
	out := make([]*OverrideResponse, len(quotes))
	for i, q := range quotes {
		out[i] = FromQuote(q)
	}
	return out
}
