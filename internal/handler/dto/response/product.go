package response

import (
	"log/slog"

	"github.com/jinzhu/copier"

	"nexus-store/internal/domain/catalog"
	"nexus-store/internal/domain/pricing"
	"nexus-store/internal/pkg/money"
)

type VariantResponse struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

type ProductResponse struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	PriceCents         int64             `json:"price_cents"`
	OriginalPriceCents int64             `json:"original_price_cents,omitempty"`
	PriceFormatted     string            `json:"price_formatted"`
	Discount           float64           `json:"discount,omitempty"`
	DiscountKind       string            `json:"discount_kind,omitempty"`
	Image              string            `json:"image"`
	Category           string            `json:"category"`
	Brand              string            `json:"brand"`
	Rating             float64           `json:"rating"`
	ReviewCount        int               `json:"review_count"`
	Stock              int               `json:"stock"`
	SKU                string            `json:"sku"`
	Badges             []string          `json:"badges,omitempty"`
	Variants           []VariantResponse `json:"variants,omitempty"`
	Favorite           bool              `json:"favorite"`
}

// FromProduct maps the catalog entry and splices in the resolved price. The
// catalog's own price fields are replaced by the quote, never shown raw.
func FromProduct(p catalog.Product, quote pricing.Quote, favorite bool) *ProductResponse {
	resp := &ProductResponse{}
	if err := copier.Copy(resp, &p); err != nil {
		slog.Error("failed to map product", "product_id", p.ID, "error", err.Error())
	}

	resp.PriceCents = quote.CurrentPriceCents
	resp.PriceFormatted = money.FromCents(quote.CurrentPriceCents).Format()
	if quote.OriginalPriceCents != quote.CurrentPriceCents {
		resp.OriginalPriceCents = quote.OriginalPriceCents
	} else {
		resp.OriginalPriceCents = 0
	}
	if quote.Discount > 0 {
		resp.Discount = quote.Discount
		resp.DiscountKind = string(quote.DiscountKind)
	}
	resp.Favorite = favorite
	return resp
}

func FromProductList(products []catalog.Product, resolve func(string) (pricing.Quote, bool), isFavorite func(string) bool) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		quote, ok := resolve(p.ID)
		if !ok {
			continue
		}
		out = append(out, FromProduct(p, quote, isFavorite(p.ID)))
	}
	return out
}
