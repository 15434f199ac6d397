package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdout/abushala-backend/internal/apperrors"
	portssvc "github.com/abdout/abushala-backend/internal/core/ports/services"
	"github.com/abdout/abushala-backend/internal/dto"
	"github.com/abdout/abushala-backend/internal/middleware"
)

// contactHandler handles the public contact form and the admin inbox.
type contactHandler struct {
	contactService portssvc.ContactSvcFacade
}

func newContactHandler(cs portssvc.ContactSvcFacade) *contactHandler {
	return &contactHandler{contactService: cs}
}

func registerContactRoutes(public *gin.RouterGroup, authed *gin.RouterGroup, contactService portssvc.ContactSvcFacade) {
	h := newContactHandler(contactService)

	public.POST("/contact", h.submitMessage)
	authed.GET("/contact", middleware.RequireAdmin(), h.listMessages)
}

// submitMessage godoc
// @Summary Submit a contact message
// @Description Stores a message from the public contact form. No mail is sent.
// @Tags contact
// @Accept json
// @Produce json
// @Param message body dto.ContactRequest true "Contact message"
// @Success 201 {object} dto.ContactMessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /contact [post]
func (h *contactHandler) submitMessage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.MsgInvalidInput})
		return
	}

	message, err := h.contactService.SubmitMessage(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to store contact message", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToContactMessageResponse(message))
}

// listMessages godoc
// @Summary List contact messages
// @Description Lists stored contact messages, newest first (admin only).
// @Tags contact
// @Produce json
// @Param limit query int false "Limit number of results" default(50)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.ContactMessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /contact [get]
func (h *contactHandler) listMessages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListContactMessagesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.MsgInvalidInput})
		return
	}

	messages, err := h.contactService.ListMessages(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list contact messages", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListContactMessageResponse(messages))
}
