package api

import (
	"errors"
	"net/http"

	reqdto "nexus-store/internal/handler/dto/request"
	resdto "nexus-store/internal/handler/dto/response"
	"nexus-store/internal/pkg/errs"
	"nexus-store/internal/store"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cart store.CartStore
}

func NewCartHandler(cart store.CartStore) *CartHandler {
	return &CartHandler{
		cart: cart,
	}
}

// @Summary Get cart
// @Description Get the cart with live-resolved line prices and totals
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromCart(h.cart))
}

// @Summary Add cart item
// @Description Add a product to the cart, merging with an existing line of the same product and variant
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddItemRequest true "Add item request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req reqdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.cart.AddItem(c.Request.Context(), req.ProductID, req.EffectiveQuantity(), req.Variant); err != nil {
		switch {
		case errors.Is(err, errs.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		case errors.Is(err, errs.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Quantity must be at least 1",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCart(h.cart))
}

// @Summary Update item quantity
// @Description Set a line's quantity; zero removes the line
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body reqdto.UpdateQuantityRequest true "Update quantity request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{id} [patch]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	productID := c.Param("id")

	var req reqdto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.cart.UpdateQuantity(c.Request.Context(), productID, *req.Quantity, req.Variant); err != nil {
		switch {
		case errors.Is(err, errs.ErrLineNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Item not in cart",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCart(h.cart))
}

// @Summary Remove cart item
// @Description Remove one line from the cart
// @Tags cart
// @Produce json
// @Param id path string true "Product ID"
// @Param variant query string false "Variant"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} map[string]string
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID := c.Param("id")
	variant := c.Query("variant")

	if err := h.cart.RemoveItem(c.Request.Context(), productID, variant); err != nil {
		switch {
		case errors.Is(err, errs.ErrLineNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Item not in cart",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCart(h.cart))
}

// @Summary Clear cart
// @Description Remove every line and the applied coupon
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cart.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(h.cart))
}

// @Summary Apply coupon
// @Description Apply a coupon code to the cart, replacing any previous one
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.ApplyCouponRequest true "Apply coupon request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/coupon [post]
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	var req reqdto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if _, ok := h.cart.ApplyCoupon(c.Request.Context(), req.Code); !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Cupom inválido",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCart(h.cart))
}

// @Summary Remove coupon
// @Description Remove the applied coupon from the cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart/coupon [delete]
func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	h.cart.RemoveCoupon(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromCart(h.cart))
}
