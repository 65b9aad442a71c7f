//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"nexus-store/internal/domain/catalog"
	"nexus-store/internal/handler/api"
	resdto "nexus-store/internal/handler/dto/response"
	infracatalog "nexus-store/internal/infra/catalog"
	"nexus-store/internal/infra/storage"
	"nexus-store/internal/store"
	"nexus-store/tests/common/builder"
	"nexus-store/tests/common/httptest"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	cartStore store.CartStore
	product   catalog.Product
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.product = builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
		b.PriceCents = 5000
	}).Build()

	ctx := context.Background()
	snaps, err := storage.NewFileSnapshots(s.T().TempDir())
	require.NoError(s.T(), err)

	cat := infracatalog.NewCatalog([]catalog.Product{s.product})
	pricingStore, err := store.NewPricingStore(ctx, cat, snaps)
	require.NoError(s.T(), err)
	s.cartStore, err = store.NewCartStore(ctx, cat, pricingStore, snaps)
	require.NoError(s.T(), err)

	handler := api.NewCartHandler(s.cartStore)
	s.router.GET("/cart", handler.Get)
	s.router.DELETE("/cart", handler.Clear)
	s.router.POST("/cart/items", handler.AddItem)
	s.router.PATCH("/cart/items/:id", handler.UpdateQuantity)
	s.router.DELETE("/cart/items/:id", handler.RemoveItem)
	s.router.POST("/cart/coupon", handler.ApplyCoupon)
	s.router.DELETE("/cart/coupon", handler.RemoveCoupon)
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) TestGet() {
	s.Run("success: empty cart", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Lines)
		s.Zero(response.TotalCents)
		s.Equal("R$ 0,00", response.TotalFormatted)
	})
}

func (s *CartHandlerTestSuite) TestAddItem() {
	url := "/cart/items"

	s.Run("success: adds a line and returns the cart", func() {
		body := map[string]any{"product_id": s.product.ID, "quantity": 2}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Lines, 1)
		s.Equal(2, response.Lines[0].Quantity)
		s.Equal(int64(10000), response.TotalCents)
	})

	s.Run("success: omitted quantity defaults to one", func() {
		body := map[string]any{"product_id": s.product.ID}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(3, response.ItemCount)
	})

	s.Run("error: 404 for a product outside the catalog", func() {
		body := map[string]any{"product_id": "no-such-product", "quantity": 1}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})

	s.Run("error: 400 on a malformed body", func() {
		body := map[string]any{"product_id": s.product.ID, "quantity": "two"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *CartHandlerTestSuite) TestUpdateQuantity() {
	s.Run("success: zero quantity removes the line", func() {
		require.NoError(s.T(), s.cartStore.AddItem(context.Background(), s.product.ID, 2, ""))

		body := map[string]any{"quantity": 0}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/cart/items/"+s.product.ID, body, "")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Lines)
	})

	s.Run("error: 404 when the line is missing", func() {
		body := map[string]any{"quantity": 3}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/cart/items/"+s.product.ID, body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Item not in cart")
	})
}

func (s *CartHandlerTestSuite) TestCoupon() {
	s.Run("success: applies and removes a coupon", func() {
		require.NoError(s.T(), s.cartStore.AddItem(context.Background(), s.product.ID, 2, ""))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/coupon",
			map[string]any{"code": "DESCONTO10"}, "")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("DESCONTO10", response.CouponCode)
		s.Equal(int64(1000), response.DiscountCents)
		s.Equal(int64(9000), response.TotalCents)

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/coupon", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.CouponCode)
		s.Equal(int64(10000), response.TotalCents)
	})

	s.Run("error: 404 for an unknown code", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/coupon",
			map[string]any{"code": "NOPE"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cupom inválido")
	})
}

func (s *CartHandlerTestSuite) TestClear() {
	require.NoError(s.T(), s.cartStore.AddItem(context.Background(), s.product.ID, 2, ""))

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart", nil, "")

	var response resdto.CartResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Empty(response.Lines)
	s.Zero(response.ItemCount)
}
