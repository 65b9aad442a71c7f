package request

type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
	Variant   string `json:"variant"`
}

// EffectiveQuantity defaults a missing quantity to one unit.
func (r *AddItemRequest) EffectiveQuantity() int {
	if r.Quantity == 0 {
		return 1
	}
	return r.Quantity
}

// Quantity is a pointer so that an explicit zero (remove the line) is
// distinguishable from an absent field.
type UpdateQuantityRequest struct {
	Quantity *int   `json:"quantity" binding:"required,min=0"`
	Variant  string `json:"variant"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required,max=30"`
}
