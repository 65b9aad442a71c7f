// Package catalog loads the static product data the storefront sells.
package catalog

import (
	_ "embed"
	"encoding/json"

	"nexus-store/internal/domain/catalog"
	"nexus-store/internal/pkg/errs"
)

//go:embed products.json
var productsJSON []byte

type StaticCatalog struct {
	products []catalog.Product
	byID     map[string]catalog.Product
}

// NewStaticCatalog parses the embedded product list. The data is read-only
// for the life of the process.
func NewStaticCatalog() (*StaticCatalog, error) {
	var products []catalog.Product
	if err := json.Unmarshal(productsJSON, &products); err != nil {
		return nil, errs.Wrap(err, "failed to parse embedded catalog")
	}
	return NewCatalog(products), nil
}

// NewCatalog wraps an explicit product list; tests inject their own.
func NewCatalog(products []catalog.Product) *StaticCatalog {
	byID := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &StaticCatalog{products: products, byID: byID}
}

func (c *StaticCatalog) Find(productID string) (catalog.Product, bool) {
	p, ok := c.byID[productID]
	return p, ok
}

func (c *StaticCatalog) All() []catalog.Product {
	out := make([]catalog.Product, len(c.products))
	copy(out, c.products)
	return out
}
