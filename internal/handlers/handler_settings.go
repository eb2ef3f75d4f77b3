package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mzafran/zakat_tracker_app/internal/apperrors"
	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
	portssvc "github.com/mzafran/zakat_tracker_app/internal/core/ports/services"
	"github.com/mzafran/zakat_tracker_app/internal/dto"
	"github.com/mzafran/zakat_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// settingsHandler handles HTTP requests related to the settings registry.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

func newSettingsHandler(ss portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{settingsService: ss}
}

// registerSettingsRoutes registers routes related to the settings registry.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("/types", h.setTypes)
		settings.PUT("/services", h.setServices)
		settings.PUT("/recipients", h.setRecipients)
		settings.PUT("/nisab", h.setNisab)
		settings.GET("/nisab-quote", h.nisabQuote)
	}
}

// getSettings godoc
// @Summary Get the settings registry
// @Description Returns the reference lists and the stored nisab weights
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get settings"})
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// setTypes godoc
// @Summary Replace the payment type list
// @Tags settings
// @Accept json
// @Produce json
// @Param types body dto.SetListRequest true "Ordered type names"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /settings/types [put]
func (h *settingsHandler) setTypes(c *gin.Context) {
	h.replaceList(c, h.settingsService.SetTypes)
}

// setServices godoc
// @Summary Replace the transfer service list
// @Tags settings
// @Accept json
// @Produce json
// @Param services body dto.SetListRequest true "Ordered service names"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /settings/services [put]
func (h *settingsHandler) setServices(c *gin.Context) {
	h.replaceList(c, h.settingsService.SetServices)
}

// setRecipients godoc
// @Summary Replace the recipient list
// @Tags settings
// @Accept json
// @Produce json
// @Param recipients body dto.SetListRequest true "Ordered recipient names"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /settings/recipients [put]
func (h *settingsHandler) setRecipients(c *gin.Context) {
	h.replaceList(c, h.settingsService.SetRecipients)
}

// replaceList binds a SetListRequest and applies it through the given setter.
func (h *settingsHandler) replaceList(c *gin.Context, set func(ctx context.Context, values []string) (*domain.Settings, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for settings list update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	settings, err := set(c.Request.Context(), req.Values)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrTableFull) {
			logger.Warn("Rejected settings list update", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update settings list", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// setNisab godoc
// @Summary Replace the nisab weights
// @Description Stores the gold and silver nisab weights in troy ounces
// @Tags settings
// @Accept json
// @Produce json
// @Param nisab body dto.SetNisabRequest true "Nisab weights"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /settings/nisab [put]
func (h *settingsHandler) setNisab(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetNisabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetNisab", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	settings, err := h.settingsService.SetNisabOz(c.Request.Context(), req.GoldOz, req.SilverOz)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error setting nisab", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to set nisab", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set nisab weights"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// nisabQuote godoc
// @Summary Compute nisab thresholds for spot prices
// @Description Computes gold and silver thresholds for the given per-ounce spot prices without storing anything
// @Tags settings
// @Produce json
// @Param goldPrice query string true "Gold spot price per troy ounce"
// @Param silverPrice query string true "Silver spot price per troy ounce"
// @Success 200 {object} dto.NisabQuoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /settings/nisab-quote [get]
func (h *settingsHandler) nisabQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	goldPrice, err := decimal.NewFromString(c.DefaultQuery("goldPrice", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid goldPrice"})
		return
	}
	silverPrice, err := decimal.NewFromString(c.DefaultQuery("silverPrice", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid silverPrice"})
		return
	}

	quote, err := h.settingsService.NisabQuote(c.Request.Context(), goldPrice, silverPrice)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute nisab quote", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute nisab quote"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToNisabQuoteResponse(quote))
}
