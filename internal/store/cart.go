package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"sync"

	"nexus-store/internal/domain/cart"
	"nexus-store/internal/domain/catalog"
	"nexus-store/internal/infra/storage"
	"nexus-store/internal/pkg/errs"
)

// LineView is a cart line with its price resolved at read time. An admin
// price change is reflected the next time the cart is read.
type LineView struct {
	ProductID      string
	Variant        string
	Quantity       int
	UnitPriceCents int64
	LineTotalCents int64
}

// CartStore holds the line list and the active coupon. Totals are computed
// live through the PricingStore, never cached at add time.
type CartStore interface {
	AddItem(ctx context.Context, productID string, quantity int, variant string) error
	RemoveItem(ctx context.Context, productID, variant string) error
	UpdateQuantity(ctx context.Context, productID string, quantity int, variant string) error
	Clear(ctx context.Context) error
	ApplyCoupon(ctx context.Context, code string) (cart.Coupon, bool)
	RemoveCoupon(ctx context.Context)

	Lines() []LineView
	Coupon() cart.Coupon
	Subtotal() int64
	DiscountAmount() int64
	Total() int64
	TotalItemCount() int
	IsInCart(productID, variant string) bool
}

type cartStore struct {
	mu      sync.RWMutex
	catalog catalog.Catalog
	pricing PricingStore
	snaps   storage.Snapshots
	lines   []*cart.Line
	coupon  cart.Coupon
}

// NewCartStore rehydrates lines and coupon from the cart snapshot. Lines
// whose product has left the catalog are dropped on load.
func NewCartStore(ctx context.Context, cat catalog.Catalog, pricingStore PricingStore, snaps storage.Snapshots) (CartStore, error) {
	s := &cartStore{
		catalog: cat,
		pricing: pricingStore,
		snaps:   snaps,
	}

	blob, found, err := snaps.Load(ctx, storage.KeyCart)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load cart snapshot")
	}
	if !found {
		return s, nil
	}

	var rec cartRecord
	if err := json.Unmarshal(blob, &rec); err != nil {
		return nil, errs.Mark(err, errs.ErrSnapshotCorrupt)
	}
	for _, lr := range rec.Lines {
		if _, ok := cat.Find(lr.ProductID); !ok {
			slog.Warn("dropping cart line for unknown product", "product_id", lr.ProductID)
			continue
		}
		line, err := cart.NewLine(lr.ProductID, lr.Quantity, lr.Variant)
		if err != nil {
			continue
		}
		s.lines = append(s.lines, line)
	}
	if rec.CouponCode != "" {
		s.coupon = cart.ReconstructCoupon(rec.CouponCode, rec.Discount)
	}
	return s, nil
}

// AddItem merges into an existing (product, variant) line or appends a new
// one. Stock limits are a UI concern and are not enforced here.
func (s *cartStore) AddItem(ctx context.Context, productID string, quantity int, variant string) error {
	if quantity < 1 {
		return errs.ErrInvalidQuantity
	}
	if _, ok := s.catalog.Find(productID); !ok {
		return errs.ErrProductNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, line := range s.lines {
		if line.Matches(productID, variant) {
			if err := line.Add(quantity); err != nil {
				return err
			}
			s.persist(ctx)
			return nil
		}
	}

	line, err := cart.NewLine(productID, quantity, variant)
	if err != nil {
		return err
	}
	s.lines = append(s.lines, line)
	s.persist(ctx)
	return nil
}

// RemoveItem is a no-op when the line is absent.
func (s *cartStore) RemoveItem(ctx context.Context, productID, variant string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(ctx, productID, variant)
	return nil
}

func (s *cartStore) removeLocked(ctx context.Context, productID, variant string) {
	for i, line := range s.lines {
		if line.Matches(productID, variant) {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// UpdateQuantity with a non-positive quantity removes the line entirely.
func (s *cartStore) UpdateQuantity(ctx context.Context, productID string, quantity int, variant string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(ctx, productID, variant)
		return nil
	}
	for _, line := range s.lines {
		if line.Matches(productID, variant) {
			if err := line.SetQuantity(quantity); err != nil {
				return err
			}
			s.persist(ctx)
			return nil
		}
	}
	return errs.ErrLineNotFound
}

// Clear empties the cart and drops any active coupon, e.g. after an order
// is submitted.
func (s *cartStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.coupon = cart.Coupon{}
	s.persist(ctx)
	return nil
}

// ApplyCoupon looks the code up case-insensitively. On a miss the cart is
// left unchanged and ok is false.
func (s *cartStore) ApplyCoupon(ctx context.Context, code string) (cart.Coupon, bool) {
	coupon, ok := cart.LookupCoupon(code)
	if !ok {
		return cart.Coupon{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupon = coupon
	s.persist(ctx)
	return coupon, true
}

func (s *cartStore) RemoveCoupon(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupon = cart.Coupon{}
	s.persist(ctx)
}

func (s *cartStore) Lines() []LineView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]LineView, 0, len(s.lines))
	for _, line := range s.lines {
		quote, _ := s.pricing.Resolve(line.ProductID())
		out = append(out, LineView{
			ProductID:      line.ProductID(),
			Variant:        line.Variant(),
			Quantity:       line.Quantity(),
			UnitPriceCents: quote.CurrentPriceCents,
			LineTotalCents: quote.CurrentPriceCents * int64(line.Quantity()),
		})
	}
	return out
}

func (s *cartStore) Coupon() cart.Coupon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.coupon
}

func (s *cartStore) Subtotal() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subtotalLocked()
}

func (s *cartStore) subtotalLocked() int64 {
	var total int64
	for _, line := range s.lines {
		quote, _ := s.pricing.Resolve(line.ProductID())
		total += quote.CurrentPriceCents * int64(line.Quantity())
	}
	return total
}

func (s *cartStore) DiscountAmount() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return discountOf(s.subtotalLocked(), s.coupon.Rate())
}

// Total is subtotal minus the coupon discount; the two always sum back to
// the subtotal exactly, even after rounding.
func (s *cartStore) Total() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	subtotal := s.subtotalLocked()
	return subtotal - discountOf(subtotal, s.coupon.Rate())
}

func discountOf(subtotalCents int64, rate float64) int64 {
	if rate == 0 {
		return 0
	}
	return int64(math.Round(float64(subtotalCents) * rate))
}

func (s *cartStore) TotalItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, line := range s.lines {
		count += line.Quantity()
	}
	return count
}

func (s *cartStore) IsInCart(productID, variant string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, line := range s.lines {
		if line.Matches(productID, variant) {
			return true
		}
	}
	return false
}

func (s *cartStore) persist(ctx context.Context) {
	blob, err := json.Marshal(toCartRecord(s.lines, s.coupon))
	if err != nil {
		slog.Warn("failed to marshal cart snapshot", "error", err.Error())
		return
	}
	if err := s.snaps.Save(ctx, storage.KeyCart, blob); err != nil {
		slog.Warn("failed to save cart snapshot", "error", err.Error())
	}
}
