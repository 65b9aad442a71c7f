package components

import (
	"context"
	"time"

	"nexus-store/internal/domain/catalog"
	infracatalog "nexus-store/internal/infra/catalog"
	"nexus-store/internal/infra/cep"
	"nexus-store/internal/infra/storage"
	"nexus-store/internal/pkg/clock"
	"nexus-store/internal/pkg/config"
	"nexus-store/internal/store"

	"go.uber.org/fx"
)

// Simulated backend latency on login and registration.
const loginDelay = 300 * time.Millisecond

var StoreModule = fx.Module("stores",
	fx.Provide(
		clock.NewRealClock,
		NewCatalog,
		NewCepClient,
		NewPricingStore,
		NewCartStore,
		NewOutboxStore,
		NewAccountStore,
		NewFavoritesStore,
		store.NewCheckoutStore,
	),
)

func NewCatalog() (catalog.Catalog, error) {
	return infracatalog.NewStaticCatalog()
}

func NewCepClient(cfg config.Config) *cep.Client {
	return cep.NewClient(cfg.Cep)
}

// Stores hydrate their snapshots at construction, before the server accepts
// requests, so a failed load surfaces as a startup error.

func NewPricingStore(cat catalog.Catalog, snaps storage.Snapshots) (store.PricingStore, error) {
	return store.NewPricingStore(context.Background(), cat, snaps)
}

func NewCartStore(cat catalog.Catalog, pricing store.PricingStore, snaps storage.Snapshots) (store.CartStore, error) {
	return store.NewCartStore(context.Background(), cat, pricing, snaps)
}

func NewOutboxStore(snaps storage.Snapshots, clk clock.Clock) (store.OutboxStore, error) {
	return store.NewOutboxStore(context.Background(), snaps, clk)
}

func NewAccountStore(snaps storage.Snapshots, outbox store.OutboxStore, clk clock.Clock) (store.AccountStore, error) {
	return store.NewAccountStore(context.Background(), snaps, outbox, clk, loginDelay)
}

func NewFavoritesStore(snaps storage.Snapshots) (store.FavoritesStore, error) {
	return store.NewFavoritesStore(context.Background(), snaps)
}
