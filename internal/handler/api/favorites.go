package api

import (
	"net/http"

	resdto "nexus-store/internal/handler/dto/response"
	"nexus-store/internal/handler/httperr"
	"nexus-store/internal/pkg/errs"
	"nexus-store/internal/store"

	"nexus-store/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

type FavoritesHandler struct {
	favorites store.FavoritesStore
	catalog   catalog.Catalog
	pricing   store.PricingStore
}

func NewFavoritesHandler(favorites store.FavoritesStore, cat catalog.Catalog, pricing store.PricingStore) *FavoritesHandler {
	return &FavoritesHandler{
		favorites: favorites,
		catalog:   cat,
		pricing:   pricing,
	}
}

// @Summary List favorites
// @Description List favorited products with resolved prices
// @Tags favorites
// @Produce json
// @Success 200 {array} resdto.ProductResponse
// @Router /favorites [get]
func (h *FavoritesHandler) List(c *gin.Context) {
	products := make([]catalog.Product, 0)
	for _, id := range h.favorites.List() {
		if p, ok := h.catalog.Find(id); ok {
			products = append(products, p)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"products": resdto.FromProductList(products, h.pricing.Resolve, h.favorites.IsFavorite),
	})
}

// @Summary Toggle favorite
// @Description Flip a product's favorite flag; returns the new state
// @Tags favorites
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Router /favorites/{id} [post]
func (h *FavoritesHandler) Toggle(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.catalog.Find(id); !ok {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrProductNotFound, "Product not found")
		return
	}
	favorite := h.favorites.Toggle(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{
		"favorite": favorite,
	})
}

// @Summary Remove favorite
// @Tags favorites
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Router /favorites/{id} [delete]
func (h *FavoritesHandler) Remove(c *gin.Context) {
	h.favorites.Remove(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// @Summary Clear favorites
// @Tags favorites
// @Success 204 "No Content"
// @Router /favorites [delete]
func (h *FavoritesHandler) Clear(c *gin.Context) {
	h.favorites.Clear(c.Request.Context())
	c.Status(http.StatusNoContent)
}
