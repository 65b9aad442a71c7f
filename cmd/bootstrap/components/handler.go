package components

import (
	"nexus-store/internal/handler"
	"nexus-store/internal/handler/api"
	"nexus-store/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewAdminHandler,
		api.NewAuthHandler,
		api.NewFavoritesHandler,
		api.NewOutboxHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	catalogHandler *api.CatalogHandler,
	cartHandler *api.CartHandler,
	checkoutHandler *api.CheckoutHandler,
	adminHandler *api.AdminHandler,
	authHandler *api.AuthHandler,
	favoritesHandler *api.FavoritesHandler,
	outboxHandler *api.OutboxHandler,
) handler.Handlers {
	return handler.Handlers{
		Catalog:   catalogHandler,
		Cart:      cartHandler,
		Checkout:  checkoutHandler,
		Admin:     adminHandler,
		Auth:      authHandler,
		Favorites: favoritesHandler,
		Outbox:    outboxHandler,
	}
}
