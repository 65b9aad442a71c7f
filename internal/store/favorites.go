package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"nexus-store/internal/infra/storage"
	"nexus-store/internal/pkg/errs"
)

// FavoritesStore is a persisted set of product ids.
type FavoritesStore interface {
	Add(ctx context.Context, productID string)
	Remove(ctx context.Context, productID string)
	// Toggle flips membership and reports the new state.
	Toggle(ctx context.Context, productID string) bool
	Clear(ctx context.Context)
	IsFavorite(productID string) bool
	List() []string
}

type favoritesStore struct {
	mu    sync.RWMutex
	snaps storage.Snapshots
	ids   []string
}

func NewFavoritesStore(ctx context.Context, snaps storage.Snapshots) (FavoritesStore, error) {
	s := &favoritesStore{snaps: snaps}

	blob, found, err := snaps.Load(ctx, storage.KeyFavorites)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load favorites snapshot")
	}
	if found {
		var rec favoritesRecord
		if err := json.Unmarshal(blob, &rec); err != nil {
			return nil, errs.Mark(err, errs.ErrSnapshotCorrupt)
		}
		s.ids = rec.ProductIDs
	}
	return s, nil
}

func (s *favoritesStore) Add(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexLocked(productID) >= 0 {
		return
	}
	s.ids = append(s.ids, productID)
	s.persist(ctx)
}

func (s *favoritesStore) Remove(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexLocked(productID); i >= 0 {
		s.ids = append(s.ids[:i], s.ids[i+1:]...)
		s.persist(ctx)
	}
}

func (s *favoritesStore) Toggle(ctx context.Context, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexLocked(productID); i >= 0 {
		s.ids = append(s.ids[:i], s.ids[i+1:]...)
		s.persist(ctx)
		return false
	}
	s.ids = append(s.ids, productID)
	s.persist(ctx)
	return true
}

func (s *favoritesStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = nil
	s.persist(ctx)
}

func (s *favoritesStore) IsFavorite(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexLocked(productID) >= 0
}

func (s *favoritesStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s *favoritesStore) indexLocked(productID string) int {
	for i, id := range s.ids {
		if id == productID {
			return i
		}
	}
	return -1
}

func (s *favoritesStore) persist(ctx context.Context) {
	blob, err := json.Marshal(favoritesRecord{ProductIDs: s.ids})
	if err != nil {
		slog.Warn("failed to marshal favorites snapshot", "error", err.Error())
		return
	}
	if err := s.snaps.Save(ctx, storage.KeyFavorites, blob); err != nil {
		slog.Warn("failed to save favorites snapshot", "error", err.Error())
	}
}
