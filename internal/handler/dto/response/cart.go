package response

import (
	"nexus-store/internal/pkg/money"
	"nexus-store/internal/store"
)

type CartLineResponse struct {
	ProductID      string `json:"product_id"`
	Variant        string `json:"variant,omitempty"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	LineTotalCents int64  `json:"line_total_cents"`
	LineTotal      string `json:"line_total"`
}

type CartResponse struct {
	Lines             []CartLineResponse `json:"lines"`
	ItemCount         int                `json:"item_count"`
	CouponCode        string             `json:"coupon_code,omitempty"`
	SubtotalCents     int64              `json:"subtotal_cents"`
	DiscountCents     int64              `json:"discount_cents"`
	TotalCents        int64              `json:"total_cents"`
	SubtotalFormatted string             `json:"subtotal_formatted"`
	TotalFormatted    string             `json:"total_formatted"`
}

func FromCart(cartStore store.CartStore) *CartResponse {
	lines := cartStore.Lines()
	resp := &CartResponse{
		Lines:         make([]CartLineResponse, 0, len(lines)),
		ItemCount:     cartStore.TotalItemCount(),
		CouponCode:    cartStore.Coupon().Code(),
		SubtotalCents: cartStore.Subtotal(),
		DiscountCents: cartStore.DiscountAmount(),
		TotalCents:    cartStore.Total(),
	}
	resp.SubtotalFormatted = money.FromCents(resp.SubtotalCents).Format()
	resp.TotalFormatted = money.FromCents(resp.TotalCents).Format()

	for _, l := range lines {
		resp.Lines = append(resp.Lines, CartLineResponse{
			ProductID:      l.ProductID,
			Variant:        l.Variant,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
			LineTotalCents: l.LineTotalCents,
			LineTotal:      money.FromCents(l.LineTotalCents).Format(),
		})
	}
	return resp
}
