package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdout/abushala-backend/internal/apperrors"
	portssvc "github.com/abdout/abushala-backend/internal/core/ports/services"
	"github.com/abdout/abushala-backend/internal/dto"
	"github.com/abdout/abushala-backend/internal/middleware"
)

// currencyHandler handles HTTP requests related to currency records.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{currencyService: cs}
}

// registerCurrencyRoutes registers the public rate listing on the open
// group and the mutations on the authenticated group behind RequireAdmin.
func registerCurrencyRoutes(public *gin.RouterGroup, authed *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	public.GET("/currencies", h.listCurrencies)
	public.GET("/currencies/:id", h.getCurrency)

	currencies := authed.Group("/currencies", middleware.RequireAdmin())
	{
		currencies.POST("", h.createCurrency)
		currencies.PUT("/:id", h.updateCurrency)
		currencies.DELETE("/:id", h.deleteCurrency)
		currencies.POST("/seed", h.seedCurrencies)
	}
}

// listCurrencies godoc
// @Summary List currencies
// @Description Lists all currency records in creation order. Public.
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getCurrency godoc
// @Summary Get a currency
// @Description Retrieves one currency record by id. Public.
// @Tags currencies
// @Produce json
// @Param id path string true "Currency ID"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} ErrorResponse
// @Router /currencies/{id} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currency, err := h.currencyService.GetCurrencyByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, err)
			return
		}
		logger.Error("Failed to get currency", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// createCurrency godoc
// @Summary Create a currency
// @Description Lists a new currency: code uppercased, change starts at zero, prices must be positive (admin only).
// @Tags currencies
// @Accept json
// @Produce json
// @Param currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Currency code already exists"
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.MsgInvalidInput})
		return
	}

	currency, err := h.currencyService.CreateCurrency(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			respondError(c, http.StatusBadRequest, err)
		case errors.Is(err, apperrors.ErrDuplicateCode):
			respondError(c, http.StatusConflict, err)
		default:
			logger.Error("Failed to create currency", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	logger.Info("Currency created", slog.String("currency_id", currency.CurrencyID), slog.String("code", currency.Code))
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(currency))
}

// updateCurrency godoc
// @Summary Update a currency
// @Description Applies a partial update. When the buy price changes, change is set to the new buy price minus the old one (admin only).
// @Tags currencies
// @Accept json
// @Produce json
// @Param id path string true "Currency ID"
// @Param currency body dto.UpdateCurrencyRequest true "Fields to update"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/{id} [put]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.MsgInvalidInput})
		return
	}

	currency, err := h.currencyService.UpdateCurrency(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			respondError(c, http.StatusNotFound, err)
		case errors.Is(err, apperrors.ErrValidation):
			respondError(c, http.StatusBadRequest, err)
		case errors.Is(err, apperrors.ErrDuplicateCode):
			respondError(c, http.StatusConflict, err)
		default:
			logger.Error("Failed to update currency", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// deleteCurrency godoc
// @Summary Delete a currency
// @Description Removes a currency record outright (admin only).
// @Tags currencies
// @Produce json
// @Param id path string true "Currency ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/{id} [delete]
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.currencyService.DeleteCurrency(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, err)
			return
		}
		logger.Error("Failed to delete currency", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// seedCurrencies godoc
// @Summary Reset currencies to defaults
// @Description Replaces the whole list with the hardcoded default currencies with fresh timestamps (admin only).
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/seed [post]
func (h *currencyHandler) seedCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.SeedDefaultCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to seed currencies", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	logger.Info("Currencies reset to defaults", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}
