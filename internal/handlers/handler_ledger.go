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

// ledgerHandler handles HTTP requests related to the payment ledger.
type ledgerHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newLedgerHandler(ps portssvc.PaymentSvcFacade) *ledgerHandler {
	return &ledgerHandler{paymentService: ps}
}

// registerLedgerRoutes registers routes related to the payment ledger.
func registerLedgerRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newLedgerHandler(paymentService)

	ledger := rg.Group("/ledger")
	{
		ledger.GET("", h.listEntries)
		ledger.POST("", h.appendEntry)
		ledger.GET("/search", h.search)
		ledger.GET("/running-total/:position", h.runningTotal)
	}
}

// listEntries godoc
// @Summary List the payment ledger
// @Description Returns every entry in table order with derived totals and unknown-reference flags
// @Tags ledger
// @Produce json
// @Success 200 {array} dto.PaymentEntryResponse
// @Router /ledger [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entries, err := h.paymentService.ListEntries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list ledger entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentEntryListResponse(entries))
}

// appendEntry godoc
// @Summary Record a payment
// @Description Validates and appends a payment at the next table position
// @Tags ledger
// @Accept json
// @Produce json
// @Param payment body dto.AppendPaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Ledger is full"
// @Router /ledger [post]
func (h *ledgerHandler) appendEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AppendPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AppendEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.paymentService.AppendEntry(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Rejected payment", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrTableFull) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentEntryResponse(entry))
}

// search godoc
// @Summary Search the ledger
// @Description Matches the needle case-insensitively against recipient, notes and type; an empty needle matches every entry
// @Tags ledger
// @Produce json
// @Param q query string false "Search needle"
// @Success 200 {object} dto.SearchResponse
// @Router /ledger/search [get]
func (h *ledgerHandler) search(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	result, err := h.paymentService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		logger.Error("Failed to search ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search ledger"})
		return
	}
	c.JSON(http.StatusOK, dto.ToSearchResponse(result))
}

// runningTotal godoc
// @Summary Get the running total at one table position
// @Tags ledger
// @Produce json
// @Param position path int true "Table position (0-based)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string "Invalid position"
// @Failure 404 {object} map[string]string "No entry at position"
// @Router /ledger/running-total/{position} [get]
func (h *ledgerHandler) runningTotal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	position, err := strconv.Atoi(c.Param("position"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid position: " + c.Param("position")})
		return
	}

	total, err := h.paymentService.RunningTotal(c.Request.Context(), position)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to get running total", slog.Int("position", position), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get running total"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"position": position, "runningTotal": total})
}
