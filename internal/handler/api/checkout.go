package api

import (
	"errors"
	"net/http"

	reqdto "nexus-store/internal/handler/dto/request"
	resdto "nexus-store/internal/handler/dto/response"
	"nexus-store/internal/infra/cep"
	"nexus-store/internal/pkg/errs"
	"nexus-store/internal/store"

	"nexus-store/internal/domain/checkout"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	checkout store.CheckoutStore
	cep      *cep.Client
}

func NewCheckoutHandler(checkoutStore store.CheckoutStore, cepClient *cep.Client) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkoutStore,
		cep:      cepClient,
	}
}

// @Summary Begin checkout
// @Description Open a checkout wizard session for the current cart
// @Tags checkout
// @Produce json
// @Success 201 {object} resdto.WizardResponse
// @Failure 409 {object} map[string]string
// @Router /checkout [post]
func (h *CheckoutHandler) Begin(c *gin.Context) {
	view, err := h.checkout.Begin(c.Request.Context())
	if err != nil {
		if errors.Is(err, errs.ErrEmptyCart) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cart is empty",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusCreated, resdto.FromWizard(view))
}

// @Summary Get checkout session
// @Tags checkout
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 404 {object} map[string]string
// @Router /checkout/{id} [get]
func (h *CheckoutHandler) Get(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	view, err := h.checkout.Get(id)
	if err != nil {
		h.abortWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizard(view))
}

// @Summary List shipping options
// @Tags checkout
// @Produce json
// @Success 200 {array} resdto.ShippingOptionResponse
// @Router /checkout/shipping-options [get]
func (h *CheckoutHandler) ShippingOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"options": resdto.FromShippingOptions(checkout.ShippingOptions()),
	})
}

// @Summary Set delivery address
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SetCheckoutAddressRequest true "Address"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /checkout/{id}/address [put]
func (h *CheckoutHandler) SetAddress(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req reqdto.SetCheckoutAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	view, err := h.checkout.SetAddress(id, req.ToDomain())
	if err != nil {
		h.abortWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizard(view))
}

// @Summary Choose shipping option
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SetShippingRequest true "Shipping option"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /checkout/{id}/shipping [put]
func (h *CheckoutHandler) SetShipping(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req reqdto.SetShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	view, err := h.checkout.SetShipping(id, req.OptionID)
	if err != nil {
		h.abortWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizard(view))
}

// @Summary Set payment
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SetPaymentRequest true "Payment"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /checkout/{id}/payment [put]
func (h *CheckoutHandler) SetPayment(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req reqdto.SetPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	view, err := h.checkout.SetPayment(id, req.ToDomain())
	if err != nil {
		h.abortWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizard(view))
}

// @Summary Advance wizard
// @Description Move to the next stage; the current stage must be complete
// @Tags checkout
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /checkout/{id}/next [post]
func (h *CheckoutHandler) Next(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	view, err := h.checkout.Next(id)
	if err != nil {
		h.abortWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizard(view))
}

// @Summary Step back
// @Description Move to the previous stage; always allowed before submission
// @Tags checkout
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 404 {object} map[string]string
// @Router /checkout/{id}/back [post]
func (h *CheckoutHandler) Back(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	view, err := h.checkout.Back(id)
	if err != nil {
		h.abortWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizard(view))
}

// @Summary Checkout summary
// @Description Totals with shipping fee and the installment table
// @Tags checkout
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SummaryResponse
// @Failure 404 {object} map[string]string
// @Router /checkout/{id}/summary [get]
func (h *CheckoutHandler) Summary(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	summary, err := h.checkout.Summarize(id)
	if err != nil {
		h.abortWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSummary(summary))
}

// @Summary Submit order
// @Description Place the order, clear the cart and close the session
// @Tags checkout
// @Produce json
// @Param id path string true "Session ID"
// @Success 201 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /checkout/{id}/submit [post]
func (h *CheckoutHandler) Submit(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	order, err := h.checkout.Submit(c.Request.Context(), id)
	if err != nil {
		h.abortWizardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOrder(order))
}

// @Summary Lookup CEP
// @Description Resolve a Brazilian postal code to an address via ViaCEP
// @Tags checkout
// @Produce json
// @Param cep path string true "CEP, with or without hyphen"
// @Success 200 {object} resdto.CepResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /cep/{cep} [get]
func (h *CheckoutHandler) LookupCep(c *gin.Context) {
	addr, err := h.cep.Lookup(c.Request.Context(), c.Param("cep"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCepNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "CEP não encontrado",
			})
		case errors.Is(err, errs.ErrCepUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "CEP lookup unavailable",
			})
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid CEP",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromCepAddress(*addr))
}

func (h *CheckoutHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid session id",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *CheckoutHandler) abortWizardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrCheckoutNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Checkout session not found",
		})
	case errors.Is(err, checkout.ErrStageIncomplete):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Current stage is incomplete",
		})
	case errors.Is(err, checkout.ErrNotAtReview):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Submission only allowed at the review stage",
		})
	case errors.Is(err, checkout.ErrAlreadySubmitted):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Checkout already submitted",
		})
	case errors.Is(err, checkout.ErrUnknownShipping):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown shipping option",
		})
	case errors.Is(err, checkout.ErrUnknownPayment), errors.Is(err, checkout.ErrInvalidInstallment):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
