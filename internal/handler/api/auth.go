package api

import (
	"errors"
	"net/http"

	reqdto "nexus-store/internal/handler/dto/request"
	resdto "nexus-store/internal/handler/dto/response"
	"nexus-store/internal/handler/middleware"
	"nexus-store/internal/pkg/config"
	"nexus-store/internal/pkg/cookie"
	"nexus-store/internal/pkg/errs"
	"nexus-store/internal/pkg/jwt"
	"nexus-store/internal/store"

	"nexus-store/internal/domain/account"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	accounts store.AccountStore
	tokens   *jwt.Service
	cfg      config.Config
}

func NewAuthHandler(accounts store.AccountStore, tokens *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		tokens:   tokens,
		cfg:      cfg,
	}
}

// @Summary Register
// @Description Create an account and send a verification email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if _, err := h.accounts.Register(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, errs.ErrDuplicateAccount):
			c.JSON(http.StatusConflict, gin.H{
				"error": "E-mail já cadastrado",
			})
		case errors.Is(err, account.ErrInvalidEmail), errors.Is(err, account.ErrPasswordTooWeak):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.RegisterResponse{
		Status: "verification_email_sent",
		Email:  req.Email,
	})
}

// @Summary Register by phone
// @Description Create an account keyed by phone and send a verification code over SMS and WhatsApp
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterPhoneRequest true "Register request"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register/phone [post]
func (h *AuthHandler) RegisterPhone(c *gin.Context) {
	var req reqdto.RegisterPhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if _, err := h.accounts.RegisterWithPhone(c.Request.Context(), req.Name, req.Phone, req.Password); err != nil {
		switch {
		case errors.Is(err, errs.ErrDuplicateAccount):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Telefone já cadastrado",
			})
		case errors.Is(err, account.ErrInvalidPhone):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid phone number",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.RegisterResponse{
		Status: "verification_code_sent",
		Phone:  req.Phone,
	})
}

// @Summary Login
// @Description Login with email and password; sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidPassword):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "E-mail ou senha incorretos",
			})
		case errors.Is(err, errs.ErrAccountUnverified):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Conta não verificada",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	token, err := h.tokens.GenerateToken(view.ID, view.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	cookie.SetSessionCookie(c, h.cfg.Cookie, token, h.cfg.JWT.Duration)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: token,
		Account:     resdto.FromAccount(view),
	})
}

// @Summary Logout
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Current account
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.AccountResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	_, view, ok := h.currentAccount(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccount(view))
}

// @Summary Verify email token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyTokenRequest true "Verification token"
// @Success 200 {object} resdto.AccountResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/verify [post]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req reqdto.VerifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.accounts.VerifyToken(c.Request.Context(), req.Token)
	if err != nil {
		h.abortVerifyError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccount(view))
}

// @Summary Verify phone code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyCodeRequest true "Verification code"
// @Success 200 {object} resdto.AccountResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/verify/phone [post]
func (h *AuthHandler) VerifyPhone(c *gin.Context) {
	var req reqdto.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.accounts.VerifyPhoneCode(c.Request.Context(), req.Code)
	if err != nil {
		h.abortVerifyError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccount(view))
}

// @Summary Resend verification email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ResendVerificationRequest true "Account email"
// @Success 200 {object} resdto.RegisterResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/verify/resend [post]
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req reqdto.ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if _, err := h.accounts.ResendVerification(c.Request.Context(), req.Email); err != nil {
		h.abortVerifyError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RegisterResponse{
		Status: "verification_email_sent",
		Email:  req.Email,
	})
}

// @Summary Update profile
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} resdto.AccountResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/me [patch]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	id, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Unauthorized",
		})
		return
	}

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.accounts.UpdateProfile(c.Request.Context(), id, req.Name, req.CPF)
	if err != nil {
		h.abortAccountError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccount(view))
}

// @Summary Add address
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.AddressRequest true "Address"
// @Success 201 {object} resdto.AccountResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/me/addresses [post]
func (h *AuthHandler) AddAddress(c *gin.Context) {
	id, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Unauthorized",
		})
		return
	}

	var req reqdto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.accounts.AddAddress(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		h.abortAccountError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAccount(view))
}

// @Summary Remove address
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Param id path string true "Address ID"
// @Success 200 {object} resdto.AccountResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/me/addresses/{id} [delete]
func (h *AuthHandler) RemoveAddress(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Unauthorized",
		})
		return
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid address id",
		})
		return
	}

	view, err := h.accounts.RemoveAddress(c.Request.Context(), accountID, addressID)
	if err != nil {
		h.abortAccountError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccount(view))
}

// @Summary Set default address
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Param id path string true "Address ID"
// @Success 200 {object} resdto.AccountResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/me/addresses/{id}/default [put]
func (h *AuthHandler) SetDefaultAddress(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Unauthorized",
		})
		return
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid address id",
		})
		return
	}

	view, err := h.accounts.SetDefaultAddress(c.Request.Context(), accountID, addressID)
	if err != nil {
		h.abortAccountError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccount(view))
}

func (h *AuthHandler) currentAccount(c *gin.Context) (uuid.UUID, store.AccountView, bool) {
	id, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Unauthorized",
		})
		return uuid.Nil, store.AccountView{}, false
	}
	view, found := h.accounts.FindByID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Account not found",
		})
		return uuid.Nil, store.AccountView{}, false
	}
	return id, view, true
}

func (h *AuthHandler) abortVerifyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrTokenUnknown):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Código de verificação inválido",
		})
	case errors.Is(err, errs.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Account not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func (h *AuthHandler) abortAccountError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Account not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
