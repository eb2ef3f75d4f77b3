package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mzafran/zakat_tracker_app/internal/apperrors"
	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
	portssvc "github.com/mzafran/zakat_tracker_app/internal/core/ports/services"
	"github.com/mzafran/zakat_tracker_app/internal/dto"
	"github.com/mzafran/zakat_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// assetHandler handles HTTP requests related to the asset snapshot ledgers.
type assetHandler struct {
	assetService portssvc.AssetSvcFacade
}

func newAssetHandler(as portssvc.AssetSvcFacade) *assetHandler {
	return &assetHandler{assetService: as}
}

// registerAssetRoutes registers routes related to the asset ledgers.
func registerAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade) {
	h := newAssetHandler(assetService)

	assets := rg.Group("/assets/:kind")
	{
		assets.GET("", h.listSnapshots)
		assets.PUT("", h.setSnapshot)
		assets.GET("/total", h.totalFor)
	}
}

// kindParam resolves the :kind path parameter, writing the 400 itself on a
// bad value.
func kindParam(c *gin.Context) (domain.AssetKind, bool) {
	kind, ok := domain.ParseAssetKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown asset kind: " + c.Param("kind")})
	}
	return kind, ok
}

// listSnapshots godoc
// @Summary List snapshots of one asset ledger
// @Description Returns all dated snapshots of the given kind in insertion order
// @Tags assets
// @Produce json
// @Param kind path string true "Asset kind" Enums(stocks, cash, debts)
// @Success 200 {array} dto.AssetSnapshotResponse
// @Failure 400 {object} map[string]string "Unknown asset kind"
// @Router /assets/{kind} [get]
func (h *assetHandler) listSnapshots(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	snapshots, err := h.assetService.ListSnapshots(c.Request.Context(), kind)
	if err != nil {
		logger.Error("Failed to list asset snapshots", slog.String("kind", string(kind)), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list snapshots"})
		return
	}
	c.JSON(http.StatusOK, dto.ToAssetSnapshotListResponse(snapshots))
}

// setSnapshot godoc
// @Summary Store one dated snapshot
// @Description Stores the account balances of one ledger kind for a date, replacing any snapshot already held for that date
// @Tags assets
// @Accept json
// @Produce json
// @Param kind path string true "Asset kind" Enums(stocks, cash, debts)
// @Param snapshot body dto.SetSnapshotRequest true "Snapshot date and balances"
// @Success 200 {object} dto.AssetSnapshotResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Ledger is full"
// @Router /assets/{kind} [put]
func (h *assetHandler) setSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	var req dto.SetSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetSnapshot", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date: " + req.Date})
		return
	}

	snapshot, err := h.assetService.SetSnapshot(c.Request.Context(), kind, date, req.Balances)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Rejected asset snapshot", slog.String("kind", string(kind)), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrTableFull) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to store asset snapshot", slog.String("kind", string(kind)), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store snapshot"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToAssetSnapshotResponse(snapshot))
}

// totalFor godoc
// @Summary Look up the snapshot total for an exact date
// @Description Returns the stored total of the given kind for one date; missing dates resolve to zero
// @Tags assets
// @Produce json
// @Param kind path string true "Asset kind" Enums(stocks, cash, debts)
// @Param date query string true "Snapshot date (YYYY-MM-DD)"
// @Success 200 {object} dto.AssetTotalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /assets/{kind}/total [get]
func (h *assetHandler) totalFor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	date, err := dto.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date: " + c.Query("date")})
		return
	}

	total, err := h.assetService.TotalFor(c.Request.Context(), kind, date)
	if err != nil {
		logger.Error("Failed to look up asset total", slog.String("kind", string(kind)), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up total"})
		return
	}
	c.JSON(http.StatusOK, dto.AssetTotalResponse{
		Kind:  string(kind),
		Date:  dto.FormatDate(date),
		Total: total,
	})
}
