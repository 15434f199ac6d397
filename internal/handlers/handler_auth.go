package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/abdout/abushala-backend/internal/apperrors"
	"github.com/abdout/abushala-backend/internal/core/domain"
	portssvc "github.com/abdout/abushala-backend/internal/core/ports/services"
	"github.com/abdout/abushala-backend/internal/dto"
	"github.com/abdout/abushala-backend/internal/middleware"
)

// ErrorResponse is the generic error payload: a single short display
// string, matching how the storefront surfaces failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse carries a short success display string.
type SuccessResponse struct {
	Success string `json:"success"`
}

// respondError writes the standard display message for err. Handlers fall
// back to explicit messages only where the surfaced text differs from the
// shared mapping, e.g. the reset flow's shorter password rule.
func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, ErrorResponse{Error: apperrors.DisplayMessage(err)})
}

// authHandler handles registration, login, logout and password resets.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the public authentication routes with a
// per-IP rate limit.
func registerAuthRoutes(rg *gin.Engine, as portssvc.AuthSvcFacade) {
	h := newAuthHandler(as)

	// 10 requests per minute per IP across the auth surface.
	rate, _ := limiter.NewRateFromFormatted("10-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)

	auth := rg.Group("/api/v1/auth", middleware.RateLimit(ipLimiter))
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/logout", h.logout)
		auth.POST("/reset/initiate", h.initiateReset)
		auth.POST("/reset/complete", h.completeReset)
	}
}

// register godoc
// @Summary Register a new account
// @Description Creates an account with the user role. Checks run in order: password confirmation, minimum length, duplicate email.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration details"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.MsgInvalidInput})
		return
	}

	_, err := h.authService.Register(c.Request.Context(), req, domain.RoleUser)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPasswordMismatch),
			errors.Is(err, apperrors.ErrPasswordTooShort):
			respondError(c, http.StatusBadRequest, err)
		case errors.Is(err, apperrors.ErrDuplicateEmail):
			respondError(c, http.StatusConflict, err)
		default:
			logger.Error("Failed to register account", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{Success: apperrors.MsgRegisterSuccess})
}

// login godoc
// @Summary Log in
// @Description Verifies credentials and returns an opaque session token. Unknown email and wrong password fail identically.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.MsgInvalidInput})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, err)
			return
		}
		logger.Error("Failed to log in", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)})
}

// logout godoc
// @Summary Log out
// @Description Deletes the session for the presented bearer token. Idempotent.
// @Tags auth
// @Produce json
// @Success 204
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	token := bearerToken(c)
	if token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			logger.Error("Failed to log out", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	c.Status(http.StatusNoContent)
}

// initiateReset godoc
// @Summary Start a password reset
// @Description Verifies an account exists for the email and returns a short-lived reset token.
// @Tags auth
// @Accept json
// @Produce json
// @Param reset body dto.ResetInitiateRequest true "Account email"
// @Success 200 {object} dto.ResetInitiateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No account for this email"
// @Router /auth/reset/initiate [post]
func (h *authHandler) initiateReset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ResetInitiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.MsgInvalidInput})
		return
	}

	token, err := h.authService.InitiatePasswordReset(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: apperrors.MsgEmailNotFound})
			return
		}
		logger.Error("Failed to initiate password reset", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, dto.ResetInitiateResponse{ResetToken: token})
}

// completeReset godoc
// @Summary Finish a password reset
// @Description Validates the reset token and overwrites the stored credential.
// @Tags auth
// @Accept json
// @Produce json
// @Param reset body dto.ResetCompleteRequest true "Reset token and new password"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /auth/reset/complete [post]
func (h *authHandler) completeReset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ResetCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.MsgInvalidInput})
		return
	}

	err := h.authService.CompletePasswordReset(c.Request.Context(), req.ResetToken, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.MsgResetTooShort})
		case errors.Is(err, apperrors.ErrValidation):
			respondError(c, http.StatusBadRequest, err)
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: apperrors.MsgEmailNotFound})
		default:
			logger.Error("Failed to complete password reset", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: apperrors.MsgResetSuccess})
}

// bearerToken extracts the raw bearer token from the Authorization header,
// returning "" when absent or malformed.
func bearerToken(c *gin.Context) string {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}
