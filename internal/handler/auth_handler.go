// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"errors"
	"net/http"

	"auth-service/config"
	"auth-service/internal/services"
	"auth-service/internal/transport/httpdto"
	auth_errors "auth-service/pkg/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP endpoints.
type AuthHandler struct {
	accounts      *services.AccountService
	tokens        *services.TokenService
	secureCookies bool
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(accounts *services.AccountService, tokens *services.TokenService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		accounts:      accounts,
		tokens:        tokens,
		secureCookies: cfg.AppMode == gin.ReleaseMode,
	}
}

// Register handles account registration. A token is issued in the body but
// no cookie is set; the cookie belongs to login.
func (h *AuthHandler) Register(c *gin.Context) {
	var req httpdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	a, err := h.accounts.Register(c.Request.Context(), services.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeAuthError(c, err)
		return
	}

	token, err := h.tokens.Issue(a.ID, a.Email)
	if err != nil {
		writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(httpdto.AuthResponse{
		User:  httpdto.FromAccount(a),
		Token: token,
	}))
}

// Login handles credential checks. The token goes out twice, in the body
// and as a cookie, so both browser and API clients are served.
func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	a, err := h.accounts.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeAuthError(c, err)
		return
	}

	token, err := h.tokens.Issue(a.ID, a.Email)
	if err != nil {
		writeAuthError(c, err)
		return
	}

	h.setTokenCookie(c, token)
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.AuthResponse{
		User:  httpdto.FromAccount(a),
		Token: token,
	}))
}

// Profile returns the account behind the verified token.
func (h *AuthHandler) Profile(c *gin.Context) {
	accountID, ok := services.AccountIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	a, err := h.accounts.FindByID(c.Request.Context(), accountID)
	if err != nil {
		writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.ProfileResponse{
		User: httpdto.FromAccount(a),
	}))
}

// Logout clears the cookie and nothing else. Issued tokens stay valid for
// their full lifetime; there is no revocation store to consult.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearTokenCookie(c)
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse[any](nil))
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	maxAge := int(h.tokens.TTL().Seconds())
	c.SetCookie(httpdto.TokenCookie, token, maxAge, "/", "", h.secureCookies, true)
}

func (h *AuthHandler) clearTokenCookie(c *gin.Context) {
	c.SetCookie(httpdto.TokenCookie, "", -1, "/", "", h.secureCookies, true)
}

func writeAuthError(c *gin.Context, err error) {
	status := services.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		c.Error(err)
		c.JSON(status, httpdto.NewInternalErrorResponse(err.Error()))
		return
	}
	c.JSON(status, httpdto.NewErrorResponse(err.Error(), errorCode(err)))
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, auth_errors.ErrAlreadyExists):
		return "EMAIL_TAKEN"
	case errors.Is(err, auth_errors.ErrInvalidInput):
		return "INVALID_REQUEST"
	case errors.Is(err, auth_errors.ErrInvalidCredentials), errors.Is(err, auth_errors.ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, auth_errors.ErrTokenExpired), errors.Is(err, auth_errors.ErrTokenInvalid):
		return "UNAUTHORIZED"
	case errors.Is(err, auth_errors.ErrNotFound):
		return "NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}
