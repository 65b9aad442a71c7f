package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"nexus-store/internal/handler/api"
	"nexus-store/internal/handler/middleware"
	"nexus-store/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Catalog   *api.CatalogHandler
	Cart      *api.CartHandler
	Checkout  *api.CheckoutHandler
	Admin     *api.AdminHandler
	Auth      *api.AuthHandler
	Favorites *api.FavoritesHandler
	Outbox    *api.OutboxHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/products", Handler: h.Catalog.List},
			{Method: http.MethodGet, Path: "/products/:id", Handler: h.Catalog.Get},
			{Method: http.MethodGet, Path: "/cep/:cep", Handler: h.Checkout.LookupCep},
		})

		cart := apiGroup.Group("/cart")
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
				{Method: http.MethodDelete, Path: "", Handler: h.Cart.Clear},
				{Method: http.MethodPost, Path: "/items", Handler: h.Cart.AddItem},
				{Method: http.MethodPatch, Path: "/items/:id", Handler: h.Cart.UpdateQuantity},
				{Method: http.MethodDelete, Path: "/items/:id", Handler: h.Cart.RemoveItem},
				{Method: http.MethodPost, Path: "/coupon", Handler: h.Cart.ApplyCoupon},
				{Method: http.MethodDelete, Path: "/coupon", Handler: h.Cart.RemoveCoupon},
			})
		}

		checkoutGroup := apiGroup.Group("/checkout")
		{
			addRoutes(checkoutGroup, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Checkout.Begin},
				{Method: http.MethodGet, Path: "/shipping-options", Handler: h.Checkout.ShippingOptions},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Checkout.Get},
				{Method: http.MethodPut, Path: "/:id/address", Handler: h.Checkout.SetAddress},
				{Method: http.MethodPut, Path: "/:id/shipping", Handler: h.Checkout.SetShipping},
				{Method: http.MethodPut, Path: "/:id/payment", Handler: h.Checkout.SetPayment},
				{Method: http.MethodPost, Path: "/:id/next", Handler: h.Checkout.Next},
				{Method: http.MethodPost, Path: "/:id/back", Handler: h.Checkout.Back},
				{Method: http.MethodGet, Path: "/:id/summary", Handler: h.Checkout.Summary},
				{Method: http.MethodPost, Path: "/:id/submit", Handler: h.Checkout.Submit},
			})
		}

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/register/phone", Handler: h.Auth.RegisterPhone},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/verify", Handler: h.Auth.VerifyEmail},
				{Method: http.MethodPost, Path: "/verify/phone", Handler: h.Auth.VerifyPhone},
				{Method: http.MethodPost, Path: "/verify/resend", Handler: h.Auth.ResendVerification},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
				{Method: http.MethodPatch, Path: "/me", Handler: h.Auth.UpdateProfile},
				{Method: http.MethodPost, Path: "/me/addresses", Handler: h.Auth.AddAddress},
				{Method: http.MethodDelete, Path: "/me/addresses/:id", Handler: h.Auth.RemoveAddress},
				{Method: http.MethodPut, Path: "/me/addresses/:id/default", Handler: h.Auth.SetDefaultAddress},
			})
		}

		favorites := apiGroup.Group("/favorites")
		{
			addRoutes(favorites, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Favorites.List},
				{Method: http.MethodDelete, Path: "", Handler: h.Favorites.Clear},
				{Method: http.MethodPost, Path: "/:id", Handler: h.Favorites.Toggle},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Favorites.Remove},
			})
		}

		outbox := apiGroup.Group("/outbox")
		{
			addRoutes(outbox, []route{
				{Method: http.MethodGet, Path: "/emails", Handler: h.Outbox.ListEmails},
				{Method: http.MethodDelete, Path: "/emails", Handler: h.Outbox.ClearEmails},
				{Method: http.MethodDelete, Path: "/emails/:id", Handler: h.Outbox.RemoveEmail},
				{Method: http.MethodGet, Path: "/messages", Handler: h.Outbox.ListMessages},
				{Method: http.MethodDelete, Path: "/messages", Handler: h.Outbox.ClearMessages},
				{Method: http.MethodDelete, Path: "/messages/:id", Handler: h.Outbox.RemoveMessage},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Admin.Login},
			})

			adminRequired := admin.Group("")
			adminRequired.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
			addRoutes(adminRequired, []route{
				{Method: http.MethodGet, Path: "/overrides", Handler: h.Admin.ListOverrides},
				{Method: http.MethodDelete, Path: "/overrides", Handler: h.Admin.ResetOverrides},
				{Method: http.MethodPost, Path: "/products/:id/discount", Handler: h.Admin.ApplyDiscount},
				{Method: http.MethodDelete, Path: "/products/:id/discount", Handler: h.Admin.RemoveDiscount},
				{Method: http.MethodPut, Path: "/products/:id/price", Handler: h.Admin.SetPrice},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
