package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kmalkov/cbr_rates_app/internal/apperrors"
	portssvc "github.com/kmalkov/cbr_rates_app/internal/core/ports/services"
	"github.com/kmalkov/cbr_rates_app/internal/dto"
	"github.com/kmalkov/cbr_rates_app/internal/middleware"
)

// syncHandler handles manual sync triggers.
type syncHandler struct {
	syncService portssvc.SyncSvcFacade
}

// newSyncHandler creates a new syncHandler.
func newSyncHandler(ss portssvc.SyncSvcFacade) *syncHandler {
	return &syncHandler{syncService: ss}
}

// RegisterSyncRoutes registers the manual sync trigger route.
func RegisterSyncRoutes(rg *gin.RouterGroup, syncService portssvc.SyncSvcFacade) {
	h := newSyncHandler(syncService)
	rg.POST("/sync", h.triggerSync)
}

// triggerSync godoc
// @Summary Run a sync cycle now
// @Description Fetches, parses and persists the feed for the given date (today when omitted). Runs independently of the background scheduler.
// @Tags sync
// @Accept json
// @Produce json
// @Param request body dto.TriggerSyncRequest false "Target date"
// @Success 200 {object} dto.TriggerSyncResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Feed could not be parsed"
// @Failure 502 {object} map[string]string "Feed unreachable"
// @Security BearerAuth
// @Router /sync [post]
func (h *syncHandler) triggerSync(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TriggerSyncRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for triggerSync", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	logger.Info("Received manual sync trigger", slog.Time("date", date))

	if err := h.syncService.RunSync(c.Request.Context(), date); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNetwork):
			logger.Error("Manual sync failed: feed unreachable", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Feed unreachable"})
		case errors.Is(err, apperrors.ErrParse):
			logger.Error("Manual sync failed: feed could not be parsed", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Feed could not be parsed"})
		default:
			logger.Error("Manual sync failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run sync cycle"})
		}
		return
	}

	logger.Info("Manual sync completed")
	c.JSON(http.StatusOK, dto.TriggerSyncResponse{Date: date.Format(time.DateOnly)})
}
