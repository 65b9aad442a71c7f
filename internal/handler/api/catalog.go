package api

import (
	"net/http"
	"strings"

	resdto "nexus-store/internal/handler/dto/response"
	"nexus-store/internal/handler/httperr"
	"nexus-store/internal/pkg/errs"

	"nexus-store/internal/domain/catalog"
	"nexus-store/internal/store"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog   catalog.Catalog
	pricing   store.PricingStore
	favorites store.FavoritesStore
}

func NewCatalogHandler(cat catalog.Catalog, pricing store.PricingStore, favorites store.FavoritesStore) *CatalogHandler {
	return &CatalogHandler{
		catalog:   cat,
		pricing:   pricing,
		favorites: favorites,
	}
}

// @Summary List products
// @Description List catalog products with resolved prices
// @Tags products
// @Produce json
// @Param category query string false "Filter by category"
// @Param q query string false "Substring match on product name"
// @Success 200 {array} resdto.ProductResponse
// @Router /products [get]
func (h *CatalogHandler) List(c *gin.Context) {
	products := h.catalog.All()

	if category := c.Query("category"); category != "" {
		filtered := products[:0:0]
		for _, p := range products {
			if strings.EqualFold(p.Category, category) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if q := strings.ToLower(c.Query("q")); q != "" {
		filtered := products[:0:0]
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), q) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"products": resdto.FromProductList(products, h.pricing.Resolve, h.favorites.IsFavorite),
	})
}

// @Summary Get product
// @Description Get one product with its resolved price
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	id := c.Param("id")

	p, ok := h.catalog.Find(id)
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrProductNotFound, "Product not found")
		return
	}
	quote, _ := h.pricing.Resolve(id)

	c.JSON(http.StatusOK, resdto.FromProduct(p, quote, h.favorites.IsFavorite(id)))
}
