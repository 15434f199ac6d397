package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdout/abushala-backend/internal/apperrors"
	"github.com/abdout/abushala-backend/internal/core/domain"
	portssvc "github.com/abdout/abushala-backend/internal/core/ports/services"
	"github.com/abdout/abushala-backend/internal/dto"
	"github.com/abdout/abushala-backend/internal/middleware"
)

// userHandler handles HTTP requests related to accounts.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers all account-related routes. The group is
// already behind SessionAuth; admin-only routes add RequireAdmin.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("", middleware.RequireAdmin(), h.listUsers)
		users.GET("/:id", h.getUser)
		users.PUT("/:id/role", middleware.RequireAdmin(), h.setUserRole)
		users.POST("/admins", middleware.RequireAdmin(), h.createAdmin)
	}
}

// listUsers godoc
// @Summary List accounts
// @Description Lists accounts with the password field stripped (admin only).
// @Tags users
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListUsersResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.MsgInvalidInput})
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list users", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

// getUser godoc
// @Summary Get an account by ID
// @Description Retrieves a single account. Users may read their own account; admins may read any.
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	targetID := c.Param("id")

	caller, ok := middleware.GetUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.MsgUnauthorized})
		return
	}
	if caller.UserID != targetID && caller.Role != domain.RoleAdmin {
		logger.Warn("Caller forbidden to read another account", slog.String("target_id", targetID))
		respondError(c, http.StatusForbidden, apperrors.ErrForbidden)
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), targetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, err)
			return
		}
		logger.Error("Failed to get user", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// setUserRole godoc
// @Summary Change an account's role
// @Description Sets the target account's role. Demoting the sole remaining admin is rejected. The response reports whether the actor demoted their own account.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param role body dto.UpdateRoleRequest true "New role"
// @Success 200 {object} dto.RoleChangeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Cannot remove the last admin"
// @Security BearerAuth
// @Router /users/{id}/role [put]
func (h *userHandler) setUserRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	targetID := c.Param("id")

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.MsgInvalidInput})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.MsgUnauthorized})
		return
	}

	removedSelf, err := h.userService.SetUserRole(c.Request.Context(), targetID, req.Role, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrLastAdmin):
			respondError(c, http.StatusConflict, err)
		case errors.Is(err, apperrors.ErrNotFound):
			respondError(c, http.StatusNotFound, err)
		case errors.Is(err, apperrors.ErrValidation):
			respondError(c, http.StatusBadRequest, err)
		default:
			logger.Error("Failed to set role", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	logger.Info("Role changed", slog.String("target_id", targetID), slog.String("role", string(req.Role)))
	c.JSON(http.StatusOK, dto.RoleChangeResponse{RemovedSelf: removedSelf})
}

// createAdmin godoc
// @Summary Create an admin account
// @Description Registers a new account with the admin role (admin only).
// @Tags users
// @Accept json
// @Produce json
// @Param admin body dto.CreateAdminRequest true "Admin account details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /users/admins [post]
func (h *userHandler) createAdmin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.MsgInvalidInput})
		return
	}

	user, err := h.userService.CreateAdmin(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicateEmail):
			respondError(c, http.StatusConflict, err)
		case errors.Is(err, apperrors.ErrPasswordTooShort):
			respondError(c, http.StatusBadRequest, err)
		default:
			logger.Error("Failed to create admin", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	logger.Info("Admin account created", slog.String("new_user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}
