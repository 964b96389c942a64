package handlers

import (
	"net/http"

	portssvc "github.com/bizedge/bizedge_backend/internal/core/ports/services"
	"github.com/bizedge/bizedge_backend/internal/dto"
	"github.com/bizedge/bizedge_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// insightsHandler handles the derived reporting endpoint.
type insightsHandler struct {
	insightsService portssvc.InsightsSvcFacade
}

// newInsightsHandler creates a new insightsHandler.
func newInsightsHandler(is portssvc.InsightsSvcFacade) *insightsHandler {
	return &insightsHandler{insightsService: is}
}

// registerInsightsRoutes registers the insights route.
func registerInsightsRoutes(rg *gin.RouterGroup, insightsService portssvc.InsightsSvcFacade) {
	h := newInsightsHandler(insightsService)
	rg.GET("/insights", h.getInsights)
}

// getInsights godoc
// @Summary Compute business insights
// @Description Aggregates invoice totals, low-stock products and the top products by revenue
// @Tags insights
// @Produce json
// @Success 200 {object} dto.InsightsResponse
// @Failure 503 {object} dto.ErrorResponse "Database not available"
// @Router /api/insights [get]
func (h *insightsHandler) getInsights(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	insights, err := h.insightsService.ComputeInsights(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute insights")
		return
	}

	c.JSON(http.StatusOK, dto.ToInsightsResponse(*insights))
}
