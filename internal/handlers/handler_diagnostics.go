package handlers

import (
	"net/http"

	portssvc "github.com/bizedge/bizedge_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// diagnosticsHandler serves the /test connectivity report.
type diagnosticsHandler struct {
	diagnosticsService portssvc.DiagnosticsSvcFacade
}

// newDiagnosticsHandler creates a new diagnosticsHandler.
func newDiagnosticsHandler(ds portssvc.DiagnosticsSvcFacade) *diagnosticsHandler {
	return &diagnosticsHandler{diagnosticsService: ds}
}

// registerDiagnosticsRoutes registers the /test route.
func registerDiagnosticsRoutes(r *gin.Engine, diagnosticsService portssvc.DiagnosticsSvcFacade) {
	h := newDiagnosticsHandler(diagnosticsService)
	r.GET("/test", h.getDiagnostics)
}

// getDiagnostics godoc
// @Summary Report database connectivity
// @Description Always responds, reporting degraded status fields when the database is unreachable
// @Tags root
// @Produce json
// @Success 200 {object} dto.DiagnosticsResponse
// @Router /test [get]
func (h *diagnosticsHandler) getDiagnostics(c *gin.Context) {
	c.JSON(http.StatusOK, h.diagnosticsService.Check(c.Request.Context()))
}
