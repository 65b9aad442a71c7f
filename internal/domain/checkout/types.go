package checkout

import "errors"

var (
	ErrStageIncomplete    = errors.New("current stage is incomplete")
	ErrAlreadySubmitted   = errors.New("checkout already submitted")
	ErrNotAtReview        = errors.New("submission only allowed at review stage")
	ErrUnknownShipping    = errors.New("unknown shipping option")
	ErrUnknownPayment     = errors.New("unknown payment method")
	ErrInvalidInstallment = errors.New("installments must be between 1 and 12")
)

// Stage is one step of the strictly linear checkout wizard.
type Stage string

const (
	StageAddress  Stage = "address"
	StageShipping Stage = "shipping"
	StagePayment  Stage = "payment"
	StageReview   Stage = "review"
)

// stages in wizard order
var stages = []Stage{StageAddress, StageShipping, StagePayment, StageReview}

func stageIndex(s Stage) int {
	for i, st := range stages {
		if st == s {
			return i
		}
	}
	return -1
}

type Address struct {
	Cep          string
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
}

// IsComplete gates forward navigation out of the address stage. Complement
// is the only optional field.
func (a Address) IsComplete() bool {
	return a.Cep != "" &&
		a.Street != "" &&
		a.Number != "" &&
		a.Neighborhood != "" &&
		a.City != "" &&
		a.State != ""
}

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentBoleto     PaymentMethod = "boleto"
	PaymentPix        PaymentMethod = "pix"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCreditCard, PaymentBoleto, PaymentPix:
		return true
	default:
		return false
	}
}

const MaxInstallments = 12

type Payment struct {
	Method       PaymentMethod
	CardNumber   string
	HolderName   string
	Expiry       string
	CVV          string
	Installments int
}

// IsComplete: card payments need every card field; boleto and pix have no
// extra inputs.
func (p Payment) IsComplete() bool {
	if !p.Method.IsValid() {
		return false
	}
	if p.Method != PaymentCreditCard {
		return true
	}
	return p.CardNumber != "" && p.HolderName != "" && p.Expiry != "" && p.CVV != ""
}
