package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
	portssvc "github.com/mzafran/zakat_tracker_app/internal/core/ports/services"
	"github.com/mzafran/zakat_tracker_app/internal/dto"
	"github.com/mzafran/zakat_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportHandler handles HTTP requests related to the reporting views.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{reportService: rs}
}

// registerReportRoutes registers routes related to reporting.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)

	reports := rg.Group("/reports")
	{
		reports.GET("/recipient", h.recipientReport)
		reports.GET("/service-fees", h.serviceFees)
		reports.GET("/recipients", h.recipients)
		reports.GET("/years", h.years)
	}
}

// recipientReport godoc
// @Summary Build a per-recipient report
// @Description Aggregates the ledger for one recipient under an optional year filter; no recipient yields placeholder aggregates
// @Tags reports
// @Produce json
// @Param name query string false "Recipient name"
// @Param year query int false "Year filter; omit for all years"
// @Success 200 {object} dto.RecipientReportResponse
// @Failure 400 {object} map[string]string "Invalid year"
// @Router /reports/recipient [get]
func (h *reportHandler) recipientReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year := domain.AllYears
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year: " + raw})
			return
		}
		year = parsed
	}

	report, err := h.reportService.Query(c.Request.Context(), c.Query("name"), year)
	if err != nil {
		logger.Error("Failed to build recipient report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, dto.ToRecipientReportResponse(report))
}

// serviceFees godoc
// @Summary Get the all-time service fee summary
// @Description Sums amounts, fees and counts per configured service over the whole ledger
// @Tags reports
// @Produce json
// @Success 200 {array} dto.ServiceFeeRowResponse
// @Router /reports/service-fees [get]
func (h *reportHandler) serviceFees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rows, err := h.reportService.ServiceFeeSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build fee summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build fee summary"})
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceFeeSummaryResponse(rows))
}

// recipients godoc
// @Summary List distinct ledger recipients
// @Tags reports
// @Produce json
// @Success 200 {array} string
// @Router /reports/recipients [get]
func (h *reportHandler) recipients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	names, err := h.reportService.Recipients(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list recipients", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list recipients"})
		return
	}
	c.JSON(http.StatusOK, names)
}

// years godoc
// @Summary List distinct ledger years
// @Tags reports
// @Produce json
// @Success 200 {array} int
// @Router /reports/years [get]
func (h *reportHandler) years(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	years, err := h.reportService.Years(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list years", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list years"})
		return
	}
	c.JSON(http.StatusOK, years)
}
