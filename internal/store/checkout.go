package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"nexus-store/internal/domain/checkout"
	"nexus-store/internal/pkg/clock"
	"nexus-store/internal/pkg/errs"
	"nexus-store/internal/pkg/money"
)

// Installment is one display row of the 1..12 installment table. Amounts
// carry standard currency rounding only; nothing is persisted per row.
type Installment struct {
	Count       int
	AmountCents int64
	Formatted   string
}

// Summary combines the cart total with the chosen shipping fee.
type Summary struct {
	SubtotalCents    int64
	CouponCode       string
	DiscountCents    int64
	ShippingFeeCents int64
	TotalCents       int64
	Installments     []Installment
}

type WizardView struct {
	ID       uuid.UUID
	Stage    checkout.Stage
	Address  checkout.Address
	Shipping checkout.ShippingOption
	Payment  checkout.Payment
}

type Order struct {
	ID          uuid.UUID
	Lines       []LineView
	Address     checkout.Address
	Shipping    checkout.ShippingOption
	Payment     checkout.PaymentMethod
	TotalCents  int64
	SubmittedAt time.Time
}

// CheckoutStore runs wizard sessions. Sessions live in memory only:
// submission is terminal and there is no resume after a restart.
type CheckoutStore interface {
	Begin(ctx context.Context) (WizardView, error)
	Get(id uuid.UUID) (WizardView, error)
	SetAddress(id uuid.UUID, addr checkout.Address) (WizardView, error)
	SetShipping(id uuid.UUID, optionID string) (WizardView, error)
	SetPayment(id uuid.UUID, payment checkout.Payment) (WizardView, error)
	Next(id uuid.UUID) (WizardView, error)
	Back(id uuid.UUID) (WizardView, error)
	Summarize(id uuid.UUID) (Summary, error)
	// Submit clears the cart and tears the wizard down. The session id is
	// dead afterwards.
	Submit(ctx context.Context, id uuid.UUID) (Order, error)
}

type checkoutStore struct {
	mu      sync.Mutex
	cart    CartStore
	outbox  OutboxStore
	clock   clock.Clock
	wizards map[uuid.UUID]*checkout.Wizard
}

func NewCheckoutStore(cartStore CartStore, outbox OutboxStore, clk clock.Clock) CheckoutStore {
	return &checkoutStore{
		cart:    cartStore,
		outbox:  outbox,
		clock:   clk,
		wizards: make(map[uuid.UUID]*checkout.Wizard),
	}
}

func (s *checkoutStore) Begin(_ context.Context) (WizardView, error) {
	if s.cart.TotalItemCount() == 0 {
		return WizardView{}, errs.ErrEmptyCart
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w := checkout.NewWizard()
	s.wizards[w.ID()] = w
	return viewOf(w), nil
}

func (s *checkoutStore) Get(id uuid.UUID) (WizardView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.findLocked(id)
	if err != nil {
		return WizardView{}, err
	}
	return viewOf(w), nil
}

func (s *checkoutStore) findLocked(id uuid.UUID) (*checkout.Wizard, error) {
	w, ok := s.wizards[id]
	if !ok {
		return nil, errs.ErrCheckoutNotFound
	}
	return w, nil
}

func (s *checkoutStore) SetAddress(id uuid.UUID, addr checkout.Address) (WizardView, error) {
	return s.update(id, func(w *checkout.Wizard) error { return w.SetAddress(addr) })
}

func (s *checkoutStore) SetShipping(id uuid.UUID, optionID string) (WizardView, error) {
	return s.update(id, func(w *checkout.Wizard) error { return w.SetShipping(optionID) })
}

func (s *checkoutStore) SetPayment(id uuid.UUID, payment checkout.Payment) (WizardView, error) {
	return s.update(id, func(w *checkout.Wizard) error { return w.SetPayment(payment) })
}

func (s *checkoutStore) Next(id uuid.UUID) (WizardView, error) {
	return s.update(id, func(w *checkout.Wizard) error { return w.Next() })
}

func (s *checkoutStore) Back(id uuid.UUID) (WizardView, error) {
	return s.update(id, func(w *checkout.Wizard) error { w.Back(); return nil })
}

func (s *checkoutStore) update(id uuid.UUID, fn func(*checkout.Wizard) error) (WizardView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.findLocked(id)
	if err != nil {
		return WizardView{}, err
	}
	if err := fn(w); err != nil {
		return WizardView{}, err
	}
	return viewOf(w), nil
}

// Summarize: final payable = cart total + flat shipping fee.
func (s *checkoutStore) Summarize(id uuid.UUID) (Summary, error) {
	s.mu.Lock()
	w, err := s.findLocked(id)
	if err != nil {
		s.mu.Unlock()
		return Summary{}, err
	}
	fee := w.Shipping().FeeCents
	s.mu.Unlock()

	subtotal := s.cart.Subtotal()
	discount := s.cart.DiscountAmount()
	total := s.cart.Total() + fee

	installments := make([]Installment, 0, checkout.MaxInstallments)
	for n := 1; n <= checkout.MaxInstallments; n++ {
		m := money.Installment(total, n)
		installments = append(installments, Installment{
			Count:       n,
			AmountCents: m.Cents(),
			Formatted:   m.Format(),
		})
	}

	return Summary{
		SubtotalCents:    subtotal,
		CouponCode:       s.cart.Coupon().Code(),
		DiscountCents:    discount,
		ShippingFeeCents: fee,
		TotalCents:       total,
		Installments:     installments,
	}, nil
}

func (s *checkoutStore) Submit(ctx context.Context, id uuid.UUID) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.findLocked(id)
	if err != nil {
		return Order{}, err
	}
	if err := w.Submit(); err != nil {
		return Order{}, err
	}

	lines := s.cart.Lines()
	total := s.cart.Total() + w.Shipping().FeeCents

	order := Order{
		ID:          uuid.New(),
		Lines:       lines,
		Address:     w.Address(),
		Shipping:    w.Shipping(),
		Payment:     w.Payment().Method,
		TotalCents:  total,
		SubmittedAt: s.clock.Now(),
	}

	if err := s.cart.Clear(ctx); err != nil {
		return Order{}, err
	}
	delete(s.wizards, id)

	s.outbox.AddEmail(ctx,
		"cliente@nexusstore.com",
		"Pedido realizado com sucesso",
		fmt.Sprintf("Pedido %s confirmado. Total: %s. Você receberá um e-mail com os detalhes da entrega.",
			order.ID, money.FromCents(total).Format()),
	)

	return order, nil
}

func viewOf(w *checkout.Wizard) WizardView {
	return WizardView{
		ID:       w.ID(),
		Stage:    w.Stage(),
		Address:  w.Address(),
		Shipping: w.Shipping(),
		Payment:  w.Payment(),
	}
}
