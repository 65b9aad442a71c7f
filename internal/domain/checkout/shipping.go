package checkout

// ShippingOption is a flat-fee delivery choice. Fees are zero or positive.
type ShippingOption struct {
	ID       string
	Name     string
	FeeCents int64
	Estimate string
}

var shippingOptions = []ShippingOption{
	{ID: "standard", Name: "Envio Correios Pac", FeeCents: 0, Estimate: "25-30 dias úteis"},
	{ID: "express", Name: "Expresso", FeeCents: 2999, Estimate: "15-20 dias úteis"},
	{ID: "sedex", Name: "Nuvem Envio Correios Sedex", FeeCents: 5999, Estimate: "7-12 dias úteis"},
}

func ShippingOptions() []ShippingOption {
	out := make([]ShippingOption, len(shippingOptions))
	copy(out, shippingOptions)
	return out
}

func LookupShipping(id string) (ShippingOption, bool) {
	for _, opt := range shippingOptions {
		if opt.ID == id {
			return opt, true
		}
	}
	return ShippingOption{}, false
}
