package api

import (
	"crypto/subtle"
	"errors"
	"net/http"

	reqdto "nexus-store/internal/handler/dto/request"
	resdto "nexus-store/internal/handler/dto/response"
	"nexus-store/internal/pkg/config"
	"nexus-store/internal/pkg/cookie"
	"nexus-store/internal/pkg/errs"
	"nexus-store/internal/pkg/jwt"
	"nexus-store/internal/store"

	"nexus-store/internal/domain/account"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	pricing store.PricingStore
	tokens  *jwt.Service
	cfg     config.Config
}

func NewAdminHandler(pricing store.PricingStore, tokens *jwt.Service, cfg config.Config) *AdminHandler {
	return &AdminHandler{
		pricing: pricing,
		tokens:  tokens,
		cfg:     cfg,
	}
}

// @Summary Admin login
// @Description Exchange the admin password for an admin session
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Admin login request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.Admin.Password)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Senha incorreta",
		})
		return
	}

	token, err := h.tokens.GenerateToken(uuid.New(), account.RoleAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	cookie.SetSessionCookie(c, h.cfg.Cookie, token, h.cfg.JWT.Duration)
	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
	})
}

// @Summary List price overrides
// @Description List every override record, active or not
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OverrideResponse
// @Router /admin/overrides [get]
func (h *AdminHandler) ListOverrides(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"overrides": resdto.FromQuoteList(h.pricing.Overrides()),
	})
}

// @Summary Apply discount
// @Description Apply a percentage or fixed discount to a product, always against its stored base price
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.ApplyDiscountRequest true "Discount request"
// @Success 200 {object} resdto.OverrideResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/products/{id}/discount [post]
func (h *AdminHandler) ApplyDiscount(c *gin.Context) {
	productID := c.Param("id")

	var req reqdto.ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	quote, err := h.pricing.ApplyDiscount(c.Request.Context(), productID, req.Amount, req.EffectiveKind())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		case errors.Is(err, errs.ErrInvalidDiscountAmount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid discount amount",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}

// @Summary Set price
// @Description Pin a product's price directly, discarding any discount figure
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.SetPriceRequest true "Set price request"
// @Success 200 {object} resdto.OverrideResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/products/{id}/price [put]
func (h *AdminHandler) SetPrice(c *gin.Context) {
	productID := c.Param("id")

	var req reqdto.SetPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	quote, err := h.pricing.SetPrice(c.Request.Context(), productID, req.PriceCents)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		case errors.Is(err, errs.ErrInvalidDiscountAmount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid price",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}

// @Summary Remove discount
// @Description Deactivate a product's override, restoring its base price
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/products/{id}/discount [delete]
func (h *AdminHandler) RemoveDiscount(c *gin.Context) {
	productID := c.Param("id")

	if err := h.pricing.RemoveDiscount(c.Request.Context(), productID); err != nil {
		switch {
		case errors.Is(err, errs.ErrOverrideNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No override for this product",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Reset overrides
// @Description Drop every override and its snapshot
// @Tags admin
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /admin/overrides [delete]
func (h *AdminHandler) ResetOverrides(c *gin.Context) {
	if err := h.pricing.ResetAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.Status(http.StatusNoContent)
}
