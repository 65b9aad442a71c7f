package response

import (
	"nexus-store/internal/domain/checkout"
	"nexus-store/internal/pkg/money"
	"nexus-store/internal/store"
)

type AddressResponse struct {
	Cep          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

type ShippingOptionResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	FeeCents     int64  `json:"fee_cents"`
	FeeFormatted string `json:"fee_formatted"`
	Estimate     string `json:"estimate"`
}

type WizardResponse struct {
	ID       string                 `json:"id"`
	Stage    string                 `json:"stage"`
	Address  AddressResponse        `json:"address"`
	Shipping ShippingOptionResponse `json:"shipping"`
	Payment  PaymentResponse        `json:"payment"`
}

type PaymentResponse struct {
	Method       string `json:"method"`
	CardNumber   string `json:"card_number,omitempty"`
	HolderName   string `json:"holder_name,omitempty"`
	Expiry       string `json:"expiry,omitempty"`
	Installments int    `json:"installments"`
}

type InstallmentResponse struct {
	Count       int    `json:"count"`
	AmountCents int64  `json:"amount_cents"`
	Formatted   string `json:"formatted"`
}

type SummaryResponse struct {
	SubtotalCents    int64                 `json:"subtotal_cents"`
	CouponCode       string                `json:"coupon_code,omitempty"`
	DiscountCents    int64                 `json:"discount_cents"`
	ShippingFeeCents int64                 `json:"shipping_fee_cents"`
	TotalCents       int64                 `json:"total_cents"`
	TotalFormatted   string                `json:"total_formatted"`
	Installments     []InstallmentResponse `json:"installments"`
}

type OrderResponse struct {
	ID             string                 `json:"id"`
	Lines          []CartLineResponse     `json:"lines"`
	Address        AddressResponse        `json:"address"`
	Shipping       ShippingOptionResponse `json:"shipping"`
	PaymentMethod  string                 `json:"payment_method"`
	TotalCents     int64                  `json:"total_cents"`
	TotalFormatted string                 `json:"total_formatted"`
	SubmittedAt    int64                  `json:"submitted_at"`
}

func fromAddress(a checkout.Address) AddressResponse {
	return AddressResponse{
		Cep:          a.Cep,
		Street:       a.Street,
		Number:       a.Number,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
	}
}

func FromShippingOption(o checkout.ShippingOption) ShippingOptionResponse {
	return ShippingOptionResponse{
		ID:           o.ID,
		Name:         o.Name,
		FeeCents:     o.FeeCents,
		FeeFormatted: money.FromCents(o.FeeCents).Format(),
		Estimate:     o.Estimate,
	}
}

func FromShippingOptions(opts []checkout.ShippingOption) []ShippingOptionResponse {
	out := make([]ShippingOptionResponse, len(opts))
	for i, o := range opts {
		out[i] = FromShippingOption(o)
	}
	return out
}

func FromWizard(v store.WizardView) *WizardResponse {
	return &WizardResponse{
		ID:       v.ID.String(),
		Stage:    string(v.Stage),
		Address:  fromAddress(v.Address),
		Shipping: FromShippingOption(v.Shipping),
		Payment: PaymentResponse{
			Method:       string(v.Payment.Method),
			CardNumber:   maskCardNumber(v.Payment.CardNumber),
			HolderName:   v.Payment.HolderName,
			Expiry:       v.Payment.Expiry,
			Installments: v.Payment.Installments,
		},
	}
}

func FromSummary(s store.Summary) *SummaryResponse {
	resp := &SummaryResponse{
		SubtotalCents:    s.SubtotalCents,
		CouponCode:       s.CouponCode,
		DiscountCents:    s.DiscountCents,
		ShippingFeeCents: s.ShippingFeeCents,
		TotalCents:       s.TotalCents,
		TotalFormatted:   money.FromCents(s.TotalCents).Format(),
		Installments:     make([]InstallmentResponse, 0, len(s.Installments)),
	}
	for _, inst := range s.Installments {
		resp.Installments = append(resp.Installments, InstallmentResponse{
			Count:       inst.Count,
			AmountCents: inst.AmountCents,
			Formatted:   inst.Formatted,
		})
	}
	return resp
}

func FromOrder(o store.Order) *OrderResponse {
	lines := make([]CartLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, CartLineResponse{
			ProductID:      l.ProductID,
			Variant:        l.Variant,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
			LineTotalCents: l.LineTotalCents,
			LineTotal:      money.FromCents(l.LineTotalCents).Format(),
		})
	}
	return &OrderResponse{
		ID:             o.ID.String(),
		Lines:          lines,
		Address:        fromAddress(o.Address),
		Shipping:       FromShippingOption(o.Shipping),
		PaymentMethod:  string(o.Payment),
		TotalCents:     o.TotalCents,
		TotalFormatted: money.FromCents(o.TotalCents).Format(),
		SubmittedAt:    o.SubmittedAt.Unix(),
	}
}

// maskCardNumber keeps only the last four digits in responses.
func maskCardNumber(n string) string {
	if len(n) <= 4 {
		return n
	}
	return "**** **** **** " + n[len(n)-4:]
}
