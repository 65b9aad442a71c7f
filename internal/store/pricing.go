// Package store holds the storefront's state. Each store owns its table
// exclusively, loads it from a snapshot at construction and rewrites the
// snapshot in full after every mutation — the local-storage contract with
// an explicit object in place of ambient global state.
package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"sort"
	"sync"

	"nexus-store/internal/domain/catalog"
	"nexus-store/internal/domain/pricing"
	"nexus-store/internal/infra/storage"
	"nexus-store/internal/pkg/errs"
)

// PricingStore is the price resolver: catalog price plus any admin override.
type PricingStore interface {
	// Resolve returns the effective pricing for a product. found is false
	// when the product exists in neither the catalog nor the override table.
	Resolve(productID string) (pricing.Quote, bool)
	// Overrides lists every override record, active or not.
	Overrides() []pricing.Quote

	ApplyDiscount(ctx context.Context, productID string, amount float64, kind pricing.Kind) (pricing.Quote, error)
	SetPrice(ctx context.Context, productID string, priceCents int64) (pricing.Quote, error)
	RemoveDiscount(ctx context.Context, productID string) error
	ResetAll(ctx context.Context) error
}

type pricingStore struct {
	mu        sync.RWMutex
	catalog   catalog.Catalog
	snaps     storage.Snapshots
	overrides map[string]*pricing.Override
}

// NewPricingStore rehydrates the override table from its snapshot. When no
// snapshot exists, catalog entries whose original price differs from the
// current one are imported as percentage discounts — a one-time migration
// of the legacy hardcoded-discount scheme.
func NewPricingStore(ctx context.Context, cat catalog.Catalog, snaps storage.Snapshots) (PricingStore, error) {
	s := &pricingStore{
		catalog:   cat,
		snaps:     snaps,
		overrides: make(map[string]*pricing.Override),
	}

	blob, found, err := snaps.Load(ctx, storage.KeyOverrides)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load override snapshot")
	}

	if found {
		var records []overrideRecord
		if err := json.Unmarshal(blob, &records); err != nil {
			return nil, errs.Mark(err, errs.ErrSnapshotCorrupt)
		}
		for _, rec := range records {
			s.overrides[rec.ProductID] = fromOverrideRecord(rec)
		}
		return s, nil
	}

	if migrated := s.importLegacyDiscounts(); migrated > 0 {
		slog.Info("imported legacy catalog discounts", "count", migrated)
		s.persist(ctx)
	}
	return s, nil
}

func (s *pricingStore) importLegacyDiscounts() int {
	for _, p := range s.catalog.All() {
		if p.OriginalPriceCents == 0 || p.OriginalPriceCents == p.PriceCents {
			continue
		}
		delta := p.OriginalPriceCents - p.PriceCents
		percent := math.Round(float64(delta)/float64(p.OriginalPriceCents)*100*100) / 100
		discount, err := pricing.NewPercentageDiscount(percent)
		if err != nil {
			continue
		}
		s.overrides[p.ID] = pricing.ReconstructOverride(p.ID, p.OriginalPriceCents, p.PriceCents, discount, true)
	}
	return len(s.overrides)
}

func (s *pricingStore) Resolve(productID string) (pricing.Quote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolveLocked(productID)
}

func (s *pricingStore) resolveLocked(productID string) (pricing.Quote, bool) {
	if ov, ok := s.overrides[productID]; ok && ov.IsActive() {
		return ov.Quote(), true
	}

	p, ok := s.catalog.Find(productID)
	if !ok {
		return pricing.Quote{DiscountKind: pricing.KindPercentage}, false
	}

	original := p.OriginalPriceCents
	if original == 0 {
		original = p.PriceCents
	}
	return pricing.Quote{
		ProductID:          p.ID,
		OriginalPriceCents: original,
		CurrentPriceCents:  p.PriceCents,
		DiscountKind:       pricing.KindPercentage,
	}, true
}

func (s *pricingStore) Overrides() []pricing.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.overrides))
	for id := range s.overrides {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]pricing.Quote, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.overrides[id].Quote())
	}
	return out
}

// ApplyDiscount computes against the existing override's stored base price
// when one exists, so replacing a discount never compounds on an already
// discounted price.
func (s *pricingStore) ApplyDiscount(ctx context.Context, productID string, amount float64, kind pricing.Kind) (pricing.Quote, error) {
	discount, err := pricing.NewDiscount(kind, amount)
	if err != nil {
		return pricing.Quote{}, errs.Mark(err, errs.ErrInvalidDiscountAmount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ov, ok := s.overrides[productID]
	if !ok {
		p, found := s.catalog.Find(productID)
		if !found {
			return pricing.Quote{}, errs.ErrProductNotFound
		}
		ov, err = pricing.NewOverride(productID, p.PriceCents)
		if err != nil {
			return pricing.Quote{}, err
		}
		s.overrides[productID] = ov
	}

	ov.ApplyDiscount(discount)
	s.persist(ctx)
	return ov.Quote(), nil
}

// SetPrice pins a product's price directly, clearing any discount figure.
func (s *pricingStore) SetPrice(ctx context.Context, productID string, priceCents int64) (pricing.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ov, ok := s.overrides[productID]
	if !ok {
		p, found := s.catalog.Find(productID)
		if !found {
			return pricing.Quote{}, errs.ErrProductNotFound
		}
		var err error
		ov, err = pricing.NewOverride(productID, p.PriceCents)
		if err != nil {
			return pricing.Quote{}, err
		}
		s.overrides[productID] = ov
	}

	if err := ov.SetPrice(priceCents); err != nil {
		return pricing.Quote{}, errs.Mark(err, errs.ErrInvalidDiscountAmount)
	}
	s.persist(ctx)
	return ov.Quote(), nil
}

// RemoveDiscount deactivates the override but keeps the record for history.
func (s *pricingStore) RemoveDiscount(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ov, ok := s.overrides[productID]
	if !ok {
		return errs.ErrOverrideNotFound
	}
	ov.Deactivate()
	s.persist(ctx)
	return nil
}

func (s *pricingStore) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.overrides = make(map[string]*pricing.Override)
	if err := s.snaps.Clear(ctx, storage.KeyOverrides); err != nil {
		slog.Warn("failed to clear override snapshot", "error", err.Error())
	}
	return nil
}

// persist rewrites the full override table. Snapshot write failures are
// logged and swallowed: in-memory state stays authoritative, matching
// local storage's fire-and-forget writes.
func (s *pricingStore) persist(ctx context.Context) {
	ids := make([]string, 0, len(s.overrides))
	for id := range s.overrides {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	records := make([]overrideRecord, 0, len(ids))
	for _, id := range ids {
		records = append(records, toOverrideRecord(s.overrides[id]))
	}

	blob, err := json.Marshal(records)
	if err != nil {
		slog.Warn("failed to marshal override snapshot", "error", err.Error())
		return
	}
	if err := s.snaps.Save(ctx, storage.KeyOverrides, blob); err != nil {
		slog.Warn("failed to save override snapshot", "error", err.Error())
	}
}
