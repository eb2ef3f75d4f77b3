package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mzafran/zakat_tracker_app/internal/apperrors"
	portssvc "github.com/mzafran/zakat_tracker_app/internal/core/ports/services"
	"github.com/mzafran/zakat_tracker_app/internal/dto"
	"github.com/mzafran/zakat_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// zakatHandler handles HTTP requests related to the annual summary register.
type zakatHandler struct {
	zakatService portssvc.ZakatSvcFacade
}

func newZakatHandler(zs portssvc.ZakatSvcFacade) *zakatHandler {
	return &zakatHandler{zakatService: zs}
}

// registerZakatRoutes registers routes related to the annual summary register.
func registerZakatRoutes(rg *gin.RouterGroup, zakatService portssvc.ZakatSvcFacade) {
	h := newZakatHandler(zakatService)

	zakat := rg.Group("/zakat")
	{
		zakat.GET("/records", h.listRecords)
		zakat.GET("/records/:position", h.getRecord)
		zakat.PUT("/records/:position", h.upsertRecord)
		zakat.GET("/dashboard", h.dashboard)
	}
}

func positionParam(c *gin.Context) (int, bool) {
	position, err := strconv.Atoi(c.Param("position"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid position: " + c.Param("position")})
		return 0, false
	}
	return position, true
}

// listRecords godoc
// @Summary List all derived summary records
// @Description Returns every summary row in position order with all derived columns
// @Tags zakat
// @Produce json
// @Success 200 {array} dto.ZakatYearRecordResponse
// @Router /zakat/records [get]
func (h *zakatHandler) listRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	records, err := h.zakatService.AllRecords(c.Request.Context())
	if err != nil {
		logger.Error("Failed to derive summary records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive records"})
		return
	}
	c.JSON(http.StatusOK, dto.ToZakatYearRecordListResponse(records))
}

// getRecord godoc
// @Summary Get one derived summary record
// @Description Derives the record at one table position, including its carry columns
// @Tags zakat
// @Produce json
// @Param position path int true "Table position (0-based)"
// @Success 200 {object} dto.ZakatYearRecordResponse
// @Failure 400 {object} map[string]string "Invalid position"
// @Router /zakat/records/{position} [get]
func (h *zakatHandler) getRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	position, ok := positionParam(c)
	if !ok {
		return
	}

	record, err := h.zakatService.Recompute(c.Request.Context(), position)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to derive summary record", slog.Int("position", position), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive record"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToZakatYearRecordResponse(record))
}

// upsertRecord godoc
// @Summary Store the manual inputs of one summary position
// @Description Stores the calculation date and gold figures for one row; an empty date blanks the row
// @Tags zakat
// @Accept json
// @Produce json
// @Param position path int true "Table position (0-based)"
// @Param record body dto.UpsertZakatRecordRequest true "Row inputs"
// @Success 200 {object} dto.ZakatYearRecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /zakat/records/{position} [put]
func (h *zakatHandler) upsertRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	position, ok := positionParam(c)
	if !ok {
		return
	}

	var req dto.UpsertZakatRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertRecord", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date: " + req.Date})
		return
	}

	if err := h.zakatService.UpsertRecord(c.Request.Context(), position, date, req.GoldPricePerOz, req.GoldOz); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Rejected summary inputs", slog.Int("position", position), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to store summary inputs", slog.Int("position", position), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store record"})
		}
		return
	}

	record, err := h.zakatService.Recompute(c.Request.Context(), position)
	if err != nil {
		logger.Error("Failed to derive stored record", slog.Int("position", position), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive record"})
		return
	}
	c.JSON(http.StatusOK, dto.ToZakatYearRecordResponse(record))
}

// dashboard godoc
// @Summary Get the register-wide dashboard
// @Description Aggregates total owed, per-type paid totals and the outstanding balance
// @Tags zakat
// @Produce json
// @Success 200 {object} dto.ZakatDashboardResponse
// @Router /zakat/dashboard [get]
func (h *zakatHandler) dashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dashboard, err := h.zakatService.Dashboard(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}
	c.JSON(http.StatusOK, dto.ToZakatDashboardResponse(dashboard))
}
