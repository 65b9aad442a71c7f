package request

import (
	"nexus-store/internal/domain/checkout"
)

type SetCheckoutAddressRequest struct {
	Cep          string `json:"cep" binding:"required"`
	Street       string `json:"street" binding:"required"`
	Number       string `json:"number" binding:"required"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood" binding:"required"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required,len=2"`
}

func (r *SetCheckoutAddressRequest) ToDomain() checkout.Address {
	return checkout.Address{
		Cep:          r.Cep,
		Street:       r.Street,
		Number:       r.Number,
		Complement:   r.Complement,
		Neighborhood: r.Neighborhood,
		City:         r.City,
		State:        r.State,
	}
}

type SetShippingRequest struct {
	OptionID string `json:"option_id" binding:"required"`
}

type SetPaymentRequest struct {
	Method       string `json:"method" binding:"required,oneof=credit_card boleto pix"`
	CardNumber   string `json:"card_number"`
	HolderName   string `json:"holder_name"`
	Expiry       string `json:"expiry"`
	CVV          string `json:"cvv"`
	Installments int    `json:"installments" binding:"omitempty,min=1,max=12"`
}

func (r *SetPaymentRequest) ToDomain() checkout.Payment {
	installments := r.Installments
	if installments == 0 {
		installments = 1
	}
	return checkout.Payment{
		Method:       checkout.PaymentMethod(r.Method),
		CardNumber:   r.CardNumber,
		HolderName:   r.HolderName,
		Expiry:       r.Expiry,
		CVV:          r.CVV,
		Installments: installments,
	}
}
