// Package storage persists store snapshots. The contract mirrors browser
// local storage: each store owns one blob, read once at startup and
// rewritten in full after every mutation.
package storage

import "context"

// Snapshot keys, one per store.
const (
	KeyOverrides = "product_overrides"
	KeyCart      = "cart"
	KeyAccounts  = "accounts"
	KeyEmails    = "sent_emails"
	KeyMessages  = "sent_messages"
	KeyFavorites = "favorites"
)

type Snapshots interface {
	// Load returns the blob for key, or found=false when nothing was ever
	// saved under it.
	Load(ctx context.Context, key string) (blob []byte, found bool, err error)
	// Save replaces the blob for key in full.
	Save(ctx context.Context, key string, blob []byte) error
	// Clear removes the blob for key. Clearing an absent key is a no-op.
	Clear(ctx context.Context, key string) error
}
