package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bizedge/bizedge_backend/internal/apperrors"
	"github.com/bizedge/bizedge_backend/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondBindingError turns a gin binding failure into the API error
// shape: 422 with per-field detail for validation failures, 400 for
// bodies that could not be parsed at all.
func respondBindingError(c *gin.Context, logger *slog.Logger, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]dto.FieldError, len(verrs))
		for i, fe := range verrs {
			details[i] = dto.FieldError{
				Field: fe.Field(),
				Rule:  fe.Tag(),
				Param: fe.Param(),
			}
		}
		logger.Warn("Request failed validation", slog.Int("field_errors", len(details)))
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{Detail: details})
		return
	}

	logger.Warn("Failed to bind JSON", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "Invalid request format: " + err.Error()})
}

// respondServiceError maps service errors onto status codes. The
// database-unavailable check is centralized here so every handler
// surfaces the same 503 instead of each deciding for itself.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrDBUnavailable):
		logger.Warn("Database unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Detail: "Database not available"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Detail: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: err.Error()})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: fallback})
	}
}
