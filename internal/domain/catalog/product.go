// Package catalog models the read-only product data the storefront sells.
// Nothing in this service ever mutates a Product; price changes live in the
// pricing package as overrides layered on top.
package catalog

type Product struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	PriceCents         int64     `json:"price_cents"`
	OriginalPriceCents int64     `json:"original_price_cents,omitempty"` // zero when never discounted
	Image              string    `json:"image"`
	Category           string    `json:"category"`
	Brand              string    `json:"brand"`
	Rating             float64   `json:"rating"`
	ReviewCount        int       `json:"review_count"`
	Stock              int       `json:"stock"`
	SKU                string    `json:"sku"`
	Badges             []string  `json:"badges,omitempty"`
	Variants           []Variant `json:"variants,omitempty"`
}

type Variant struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// Catalog is the static product collection supplied at startup.
type Catalog interface {
	Find(productID string) (Product, bool)
	All() []Product
}
