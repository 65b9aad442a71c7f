//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"nexus-store/internal/domain/account"
	"nexus-store/internal/domain/catalog"
	"nexus-store/internal/handler/api"
	"nexus-store/internal/handler/middleware"
	resdto "nexus-store/internal/handler/dto/response"
	infracatalog "nexus-store/internal/infra/catalog"
	"nexus-store/internal/infra/storage"
	"nexus-store/internal/pkg/config"
	"nexus-store/internal/pkg/jwt"
	"nexus-store/internal/store"
	"nexus-store/tests/common/builder"
	"nexus-store/tests/common/httptest"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	tokens       *jwt.Service
	pricingStore store.PricingStore
	product      catalog.Product
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	cfg := config.NewTestConfig()
	s.tokens = jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)

	s.product = builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
		b.PriceCents = 10000
	}).Build()

	snaps, err := storage.NewFileSnapshots(s.T().TempDir())
	require.NoError(s.T(), err)
	s.pricingStore, err = store.NewPricingStore(context.Background(),
		infracatalog.NewCatalog([]catalog.Product{s.product}), snaps)
	require.NoError(s.T(), err)

	handler := api.NewAdminHandler(s.pricingStore, s.tokens, cfg)
	auth := middleware.NewAuthMiddleware(s.tokens)

	admin := s.router.Group("/admin")
	admin.POST("/login", handler.Login)

	protected := admin.Group("")
	protected.Use(auth.RequireAuth(), auth.RequireAdmin())
	{
		protected.GET("/overrides", handler.ListOverrides)
		protected.DELETE("/overrides", handler.ResetOverrides)
		protected.POST("/products/:id/discount", handler.ApplyDiscount)
		protected.DELETE("/products/:id/discount", handler.RemoveDiscount)
		protected.PUT("/products/:id/price", handler.SetPrice)
	}
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) adminToken() string {
	token, err := s.tokens.GenerateToken(uuid.New(), account.RoleAdmin)
	require.NoError(s.T(), err)
	return token
}

func (s *AdminHandlerTestSuite) TestLogin() {
	url := "/admin/login"

	s.Run("success: correct password returns a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"password": "admin123"}, "")

		var response struct {
			AccessToken string `json:"access_token"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotEmpty(response.AccessToken)

		claims, err := s.tokens.ValidateToken(response.AccessToken)
		s.Require().NoError(err)
		s.Equal(account.RoleAdmin.String(), claims.Role)
	})

	s.Run("error: 401 for a wrong password", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"password": "errada"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Senha incorreta")
	})
}

func (s *AdminHandlerTestSuite) TestAuthorization() {
	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/overrides", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 403 for a customer token", func() {
		token, err := s.tokens.GenerateToken(uuid.New(), account.RoleCustomer)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/overrides", nil, token)
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

func (s *AdminHandlerTestSuite) TestApplyDiscount() {
	url := "/admin/products/" + s.product.ID + "/discount"
	token := s.adminToken()

	s.Run("success: percentage discount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"amount": 10, "kind": "percentage"}, token)

		var response resdto.OverrideResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(10000), response.OriginalPriceCents)
		s.Equal(int64(9000), response.CurrentPriceCents)
		s.True(response.Active)
	})

	s.Run("error: 400 for an out-of-range amount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"amount": 101, "kind": "percentage"}, token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid discount amount")
	})

	s.Run("error: 404 for an unknown product", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/admin/products/no-such-product/discount",
			map[string]any{"amount": 10, "kind": "percentage"}, token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})
}

func (s *AdminHandlerTestSuite) TestSetPrice() {
	url := "/admin/products/" + s.product.ID + "/price"
	token := s.adminToken()

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
		map[string]any{"price_cents": 12000}, token)

	var response resdto.OverrideResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(int64(12000), response.CurrentPriceCents)
	s.Zero(response.Discount)
}

func (s *AdminHandlerTestSuite) TestRemoveDiscount() {
	token := s.adminToken()

	s.Run("success: deactivates the override", func() {
		_, err := s.pricingStore.ApplyDiscount(context.Background(), s.product.ID, 10, "percentage")
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			"/admin/products/"+s.product.ID+"/discount", nil, token)
		s.Equal(http.StatusNoContent, rec.Code)

		quote, found := s.pricingStore.Resolve(s.product.ID)
		s.Require().True(found)
		s.Equal(int64(10000), quote.CurrentPriceCents)
	})

	s.Run("error: 404 without an override", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			"/admin/products/no-such-product/discount", nil, token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No override for this product")
	})
}

func (s *AdminHandlerTestSuite) TestListAndReset() {
	token := s.adminToken()

	_, err := s.pricingStore.ApplyDiscount(context.Background(), s.product.ID, 20, "percentage")
	s.Require().NoError(err)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/overrides", nil, token)

	var response struct {
		Overrides []resdto.OverrideResponse `json:"overrides"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response.Overrides, 1)
	s.Equal(s.product.ID, response.Overrides[0].ProductID)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/overrides", nil, token)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/overrides", nil, token)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Empty(response.Overrides)
}
