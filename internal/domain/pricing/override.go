package pricing

// Override is an admin-defined replacement price for one product. The stored
// base price survives discount replacement, so re-applying a discount never
// compounds on an already-discounted price. Removal deactivates the record
// but keeps it for history.
type Override struct {
	productID      string
	basePriceCents int64
	currentCents   int64
	discount       Discount
	active         bool
}

func NewOverride(productID string, basePriceCents int64) (*Override, error) {
	if basePriceCents <= 0 {
		return nil, ErrNonPositiveBasePrice
	}
	return &Override{
		productID:      productID,
		basePriceCents: basePriceCents,
		currentCents:   basePriceCents,
		discount:       ZeroDiscount(),
		active:         true,
	}, nil
}

// ReconstructOverride rebuilds an override from a persisted snapshot without
// revalidating it; the snapshot is trusted.
func ReconstructOverride(productID string, baseCents, currentCents int64, discount Discount, active bool) *Override {
	return &Override{
		productID:      productID,
		basePriceCents: baseCents,
		currentCents:   currentCents,
		discount:       discount,
		active:         active,
	}
}

// ApplyDiscount replaces any prior discount, computing against the stored
// base price rather than the currently discounted one.
func (o *Override) ApplyDiscount(d Discount) {
	o.discount = d
	o.currentCents = d.PriceFor(o.basePriceCents)
	o.active = true
}

// SetPrice pins the current price directly. A direct edit discards the
// discount figure, matching the admin price-edit screen.
func (o *Override) SetPrice(priceCents int64) error {
	if priceCents < 0 {
		return ErrNegativeOverridePrice
	}
	o.currentCents = priceCents
	o.discount = ZeroDiscount()
	o.active = true
	return nil
}

// Deactivate removes the discount and restores the base price. The record
// stays retrievable for audit.
func (o *Override) Deactivate() {
	o.discount = ZeroDiscount()
	o.currentCents = o.basePriceCents
	o.active = false
}

func (o *Override) ProductID() string     { return o.productID }
func (o *Override) BasePriceCents() int64 { return o.basePriceCents }
func (o *Override) CurrentCents() int64   { return o.currentCents }
func (o *Override) Discount() Discount    { return o.discount }
func (o *Override) IsActive() bool        { return o.active }

// Quote is the resolved pricing view for one product.
type Quote struct {
	ProductID          string
	OriginalPriceCents int64
	CurrentPriceCents  int64
	Discount           float64
	DiscountKind       Kind
	Active             bool
}

func (o *Override) Quote() Quote {
	return Quote{
		ProductID:          o.productID,
		OriginalPriceCents: o.basePriceCents,
		CurrentPriceCents:  o.currentCents,
		Discount:           o.discount.Magnitude(),
		DiscountKind:       o.discount.Kind(),
		Active:             o.active,
	}
}
