package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kmalkov/cbr_rates_app/internal/apperrors"
	portssvc "github.com/kmalkov/cbr_rates_app/internal/core/ports/services"
	"github.com/kmalkov/cbr_rates_app/internal/dto"
	"github.com/kmalkov/cbr_rates_app/internal/middleware"
)

// rateHandler handles HTTP requests for the rate query surface.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{rateService: rs}
}

// RegisterRateRoutes registers the read-only rate routes.
func RegisterRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.listRates)
		rates.GET("/num/:numCode", h.getRateByNumCode)
		rates.GET("/char/:charCode", h.getRateByCharCode)
	}
}

// charCodeURI binds the alpha-code path parameter.
type charCodeURI struct {
	CharCode string `uri:"charCode" binding:"required,charcode"`
}

// listRates godoc
// @Summary List latest rates
// @Description Retrieves every currency rate for the most recent feed date
// @Tags rates
// @Produce json
// @Success 200 {array} dto.RateResponse
// @Failure 500 {object} map[string]string "Failed to retrieve rates"
// @Router /rates [get]
func (h *rateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.rateService.ListRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRateResponse(rates))
}

// getRateByNumCode godoc
// @Summary Get a rate by numeric code
// @Description Retrieves the latest rate for the given ISO numeric currency code
// @Tags rates
// @Produce json
// @Param numCode path string true "ISO numeric code, e.g. 840"
// @Success 200 {object} dto.RateResponse
// @Failure 404 {object} map[string]string "Rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve rate"
// @Router /rates/num/{numCode} [get]
func (h *rateHandler) getRateByNumCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	numCode := c.Param("numCode")

	rate, err := h.rateService.GetRateByNumCode(c.Request.Context(), numCode)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid numeric code"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Rate not found"})
		default:
			logger.Error("Failed to get rate by numeric code", slog.String("num_code", numCode), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRateResponse(rate))
}

// getRateByCharCode godoc
// @Summary Get a rate by alpha code
// @Description Retrieves the latest rate for the given 3-letter currency code, case-insensitively
// @Tags rates
// @Produce json
// @Param charCode path string true "ISO alpha code, e.g. USD" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.RateResponse
// @Failure 400 {object} map[string]string "Alpha code must be 3 letters"
// @Failure 404 {object} map[string]string "Rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve rate"
// @Router /rates/char/{charCode} [get]
func (h *rateHandler) getRateByCharCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var uri charCodeURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Alpha code must be 3 letters"})
		return
	}

	rate, err := h.rateService.GetRateByCharCode(c.Request.Context(), uri.CharCode)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Alpha code must be 3 letters"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Rate not found"})
		default:
			logger.Error("Failed to get rate by alpha code", slog.String("char_code", uri.CharCode), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRateResponse(rate))
}
