//go:build unit

package builder

import (
	"github.com/brianvoe/gofakeit/v7"

	"nexus-store/internal/domain/catalog"
)

type ProductBuilder struct {
	ID                 string
	Name               string
	PriceCents         int64
	OriginalPriceCents int64
	Category           string
	Brand              string
	Stock              int
	Variants           []catalog.Variant
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:         gofakeit.UUID(),
		Name:       gofakeit.ProductName(),
		PriceCents: int64(gofakeit.Number(1000, 500000)),
		Category:   gofakeit.ProductCategory(),
		Brand:      gofakeit.Company(),
		Stock:      gofakeit.Number(1, 50),
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) Build() catalog.Product {
	return catalog.Product{
		ID:                 b.ID,
		Name:               b.Name,
		Description:        gofakeit.Sentence(8),
		PriceCents:         b.PriceCents,
		OriginalPriceCents: b.OriginalPriceCents,
		Image:              gofakeit.URL(),
		Category:           b.Category,
		Brand:              b.Brand,
		Rating:             gofakeit.Float64Range(1, 5),
		ReviewCount:        gofakeit.Number(0, 500),
		Stock:              b.Stock,
		SKU:                gofakeit.UUID(),
		Variants:           b.Variants,
	}
}
