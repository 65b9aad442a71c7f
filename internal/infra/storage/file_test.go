//go:build unit

package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-store/internal/infra/storage"
)

func TestFileSnapshotsRoundTrip(t *testing.T) {
	ctx := context.Background()
	snaps, err := storage.NewFileSnapshots(t.TempDir())
	require.NoError(t, err)

	blob := []byte(`{"lines":[{"product_id":"p1","quantity":2}]}`)
	require.NoError(t, snaps.Save(ctx, storage.KeyCart, blob))

	loaded, found, err := snaps.Load(ctx, storage.KeyCart)
	require.NoError(t, err)
	require.True(t, found)
	if diff := cmp.Diff(blob, loaded); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestFileSnapshotsMissingKey(t *testing.T) {
	ctx := context.Background()
	snaps, err := storage.NewFileSnapshots(t.TempDir())
	require.NoError(t, err)

	blob, found, err := snaps.Load(ctx, storage.KeyFavorites)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, blob)
}

func TestFileSnapshotsSaveReplaces(t *testing.T) {
	ctx := context.Background()
	snaps, err := storage.NewFileSnapshots(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, snaps.Save(ctx, storage.KeyCart, []byte(`{"v":1}`)))
	require.NoError(t, snaps.Save(ctx, storage.KeyCart, []byte(`{"v":2}`)))

	loaded, found, err := snaps.Load(ctx, storage.KeyCart)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte(`{"v":2}`), loaded)
}

func TestFileSnapshotsClear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	snaps, err := storage.NewFileSnapshots(dir)
	require.NoError(t, err)

	require.NoError(t, snaps.Save(ctx, storage.KeyCart, []byte(`{}`)))
	require.NoError(t, snaps.Clear(ctx, storage.KeyCart))

	_, found, err := snaps.Load(ctx, storage.KeyCart)
	require.NoError(t, err)
	assert.False(t, found)

	// Clearing again is a no-op.
	require.NoError(t, snaps.Clear(ctx, storage.KeyCart))
}

func TestFileSnapshotsLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	snaps, err := storage.NewFileSnapshots(dir)
	require.NoError(t, err)

	require.NoError(t, snaps.Save(ctx, storage.KeyCart, []byte(`{}`)))

	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)

	_, err = os.Stat(filepath.Join(dir, storage.KeyCart+".json"))
	assert.NoError(t, err)
}
