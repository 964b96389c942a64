package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bizedge/bizedge_backend/internal/core/ports/services"
	"github.com/bizedge/bizedge_backend/internal/dto"
	"github.com/bizedge/bizedge_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// partyHandler handles HTTP requests related to parties.
type partyHandler struct {
	partyService portssvc.PartySvcFacade
}

// newPartyHandler creates a new partyHandler.
func newPartyHandler(ps portssvc.PartySvcFacade) *partyHandler {
	return &partyHandler{partyService: ps}
}

// registerPartyRoutes registers routes related to parties.
func registerPartyRoutes(rg *gin.RouterGroup, partyService portssvc.PartySvcFacade) {
	h := newPartyHandler(partyService)

	parties := rg.Group("/parties")
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
	}
}

// createParty godoc
// @Summary Create a new party
// @Description Creates a customer or supplier record
// @Tags parties
// @Accept json
// @Produce json
// @Param party body dto.CreatePartyRequest true "Party details"
// @Success 200 {object} dto.CreateResponse
// @Failure 422 {object} dto.ValidationErrorResponse "Validation error"
// @Failure 503 {object} dto.ErrorResponse "Database not available"
// @Router /api/parties [post]
func (h *partyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	id, err := h.partyService.CreateParty(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create party")
		return
	}

	logger.Info("Party created successfully", slog.String("party_id", id))
	c.JSON(http.StatusOK, dto.CreateResponse{ID: id})
}

// listParties godoc
// @Summary List all parties
// @Description Retrieves every stored party with its string identifier
// @Tags parties
// @Produce json
// @Success 200 {array} dto.PartyResponse
// @Failure 503 {object} dto.ErrorResponse "Database not available"
// @Router /api/parties [get]
func (h *partyHandler) listParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	parties, err := h.partyService.ListParties(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list parties")
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyResponseSlice(parties))
}
