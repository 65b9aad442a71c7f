//go:build unit

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-store/internal/store"
)

func TestFavoritesStoreToggle(t *testing.T) {
	ctx := context.Background()
	favorites, err := store.NewFavoritesStore(ctx, newSnapshots(t))
	require.NoError(t, err)

	assert.True(t, favorites.Toggle(ctx, "p1"))
	assert.True(t, favorites.IsFavorite("p1"))

	assert.False(t, favorites.Toggle(ctx, "p1"))
	assert.False(t, favorites.IsFavorite("p1"))
}

func TestFavoritesStoreAddRemove(t *testing.T) {
	ctx := context.Background()
	favorites, err := store.NewFavoritesStore(ctx, newSnapshots(t))
	require.NoError(t, err)

	favorites.Add(ctx, "p1")
	favorites.Add(ctx, "p2")
	// Adding twice keeps a single entry.
	favorites.Add(ctx, "p1")
	assert.Equal(t, []string{"p1", "p2"}, favorites.List())

	favorites.Remove(ctx, "p1")
	assert.Equal(t, []string{"p2"}, favorites.List())

	favorites.Clear(ctx)
	assert.Empty(t, favorites.List())
}

func TestFavoritesStoreSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	snaps := newSnapshots(t)

	favorites, err := store.NewFavoritesStore(ctx, snaps)
	require.NoError(t, err)
	favorites.Add(ctx, "p1")
	favorites.Add(ctx, "p2")

	reloaded, err := store.NewFavoritesStore(ctx, snaps)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, reloaded.List())
}
