package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/mzafran/zakat_tracker_app/internal/core/ports/services"
	"github.com/mzafran/zakat_tracker_app/internal/dto"
	"github.com/mzafran/zakat_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// hawlHandler handles HTTP requests related to the hawl countdown.
type hawlHandler struct {
	hawlService portssvc.HawlSvcFacade
}

func newHawlHandler(hs portssvc.HawlSvcFacade) *hawlHandler {
	return &hawlHandler{hawlService: hs}
}

// registerHawlRoutes registers routes related to the hawl countdown.
func registerHawlRoutes(rg *gin.RouterGroup, hawlService portssvc.HawlSvcFacade) {
	h := newHawlHandler(hawlService)
	rg.GET("/hawl", h.status)
}

// status godoc
// @Summary Get the hawl countdown
// @Description Derives the next zakat anniversary from the register's most recent calculation date
// @Tags hawl
// @Produce json
// @Success 200 {object} dto.HawlStatusResponse
// @Router /hawl [get]
func (h *hawlHandler) status(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status, err := h.hawlService.Status(c.Request.Context())
	if err != nil {
		logger.Error("Failed to derive hawl status", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive hawl status"})
		return
	}
	c.JSON(http.StatusOK, dto.ToHawlStatusResponse(status))
}
