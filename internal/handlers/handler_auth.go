package handlers

import (
	"errors"
	"net/http"

	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/SscSPs/share_registry_app/internal/apperrors"
	portssvc "github.com/SscSPs/share_registry_app/internal/core/ports/services"
	"github.com/SscSPs/share_registry_app/internal/dto"
	"github.com/SscSPs/share_registry_app/internal/middleware"
	"github.com/SscSPs/share_registry_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// authHandler handles authentication related requests.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the public authentication routes and the
// authenticated credential route.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)

	// 5 attempts per minute per IP on the credential endpoints.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.login)
		auth.POST("/recover", limitMiddleware, h.recoverPassword)
		auth.PUT("/password", middleware.AuthMiddleware(cfg.JWTSecret), h.changePassword)
	}
}

// login godoc
// @Summary Log in
// @Description Authenticates the admin or a shareholder and returns a JWT. A wrong password returns the stored hint.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} dto.LoginFailure
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, hint, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAuthentication) || errors.Is(err, apperrors.ErrNotFound) {
			// Same status for unknown account and wrong password.
			c.JSON(http.StatusUnauthorized, dto.LoginFailure{Error: "Invalid username or password", Hint: hint})
			return
		}
		respondError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// changePassword godoc
// @Summary Change password
// @Description Replaces the authenticated principal's credential and hint.
// @Tags auth
// @Accept json
// @Produce json
// @Param password body dto.ChangePasswordRequest true "New credential"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/password [put]
func (h *authHandler) changePassword(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), principal, req); err != nil {
		respondError(c, err, "Failed to change password")
		return
	}
	c.Status(http.StatusNoContent)
}

// recoverPassword godoc
// @Summary Recover password
// @Description Mails a temporary password to the account's registered address and returns the stored hint.
// @Tags auth
// @Accept json
// @Produce json
// @Param recover body dto.RecoverPasswordRequest true "Account identifier"
// @Success 200 {object} dto.RecoverPasswordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /auth/recover [post]
func (h *authHandler) recoverPassword(c *gin.Context) {
	var req dto.RecoverPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.authService.RecoverPassword(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to recover password")
		return
	}
	c.JSON(http.StatusOK, resp)
}
