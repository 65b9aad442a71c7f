package checkout

import "github.com/google/uuid"

// Wizard is one checkout session walking address → shipping → payment →
// review. Forward navigation is blocked while the current stage is invalid;
// backward navigation is unconstrained. Submission is terminal.
type Wizard struct {
	id        uuid.UUID
	stage     Stage
	address   Address
	shipping  ShippingOption
	payment   Payment
	submitted bool
}

func NewWizard() *Wizard {
	return &Wizard{
		id:    uuid.New(),
		stage: StageAddress,
		payment: Payment{
			Method:       PaymentCreditCard,
			Installments: 1,
		},
	}
}

func (w *Wizard) ID() uuid.UUID            { return w.id }
func (w *Wizard) Stage() Stage             { return w.stage }
func (w *Wizard) Address() Address         { return w.address }
func (w *Wizard) Shipping() ShippingOption { return w.shipping }
func (w *Wizard) Payment() Payment         { return w.payment }
func (w *Wizard) IsSubmitted() bool        { return w.submitted }

func (w *Wizard) SetAddress(a Address) error {
	if w.submitted {
		return ErrAlreadySubmitted
	}
	w.address = a
	return nil
}

func (w *Wizard) SetShipping(optionID string) error {
	if w.submitted {
		return ErrAlreadySubmitted
	}
	opt, ok := LookupShipping(optionID)
	if !ok {
		return ErrUnknownShipping
	}
	w.shipping = opt
	return nil
}

func (w *Wizard) SetPayment(p Payment) error {
	if w.submitted {
		return ErrAlreadySubmitted
	}
	if !p.Method.IsValid() {
		return ErrUnknownPayment
	}
	if p.Installments < 1 || p.Installments > MaxInstallments {
		return ErrInvalidInstallment
	}
	w.payment = p
	return nil
}

// stageValid is the per-stage gate for forward navigation.
func (w *Wizard) stageValid() bool {
	switch w.stage {
	case StageAddress:
		return w.address.IsComplete()
	case StageShipping:
		return w.shipping.ID != ""
	case StagePayment:
		return w.payment.IsComplete()
	default:
		return true
	}
}

func (w *Wizard) Next() error {
	if w.submitted {
		return ErrAlreadySubmitted
	}
	if !w.stageValid() {
		return ErrStageIncomplete
	}
	if i := stageIndex(w.stage); i < len(stages)-1 {
		w.stage = stages[i+1]
	}
	return nil
}

func (w *Wizard) Back() {
	if w.submitted {
		return
	}
	if i := stageIndex(w.stage); i > 0 {
		w.stage = stages[i-1]
	}
}

// Submit finalizes the wizard. Every stage must be valid and the wizard must
// have reached review; afterwards the session is dead.
func (w *Wizard) Submit() error {
	if w.submitted {
		return ErrAlreadySubmitted
	}
	if w.stage != StageReview {
		return ErrNotAtReview
	}
	if !w.address.IsComplete() || w.shipping.ID == "" || !w.payment.IsComplete() {
		return ErrStageIncomplete
	}
	w.submitted = true
	return nil
}
