package services

import (
	"context"

	"github.com/bizedge/bizedge_backend/internal/core/domain"
)

// InsightsSvcFacade computes the on-demand insights report.
type InsightsSvcFacade interface {
	ComputeInsights(ctx context.Context) (*domain.Insights, error)
}
