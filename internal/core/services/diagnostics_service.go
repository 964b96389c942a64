package services

import (
	"context"
	"log/slog"

	portsrepo "github.com/bizedge/bizedge_backend/internal/core/ports/repositories"
	portssvc "github.com/bizedge/bizedge_backend/internal/core/ports/services"
	"github.com/bizedge/bizedge_backend/internal/dto"
	"github.com/bizedge/bizedge_backend/internal/platform/config"
)

// diagnosticsCollectionCap bounds the collection listing in /test.
const diagnosticsCollectionCap = 10

// diagnosticsService implements the DiagnosticsSvcFacade interface
type diagnosticsService struct {
	BaseService
	cfg             *config.Config
	diagnosticsRepo portsrepo.DiagnosticsRepositoryFacade
}

// NewDiagnosticsService creates a new diagnostics service
func NewDiagnosticsService(cfg *config.Config, repo portsrepo.DiagnosticsRepositoryFacade) portssvc.DiagnosticsSvcFacade {
	return &diagnosticsService{cfg: cfg, diagnosticsRepo: repo}
}

// Ensure diagnosticsService implements the DiagnosticsSvcFacade interface
var _ portssvc.DiagnosticsSvcFacade = (*diagnosticsService)(nil)

// Check builds the connectivity report. It never fails: every driver
// error is folded into the response fields so /test stays up even when
// the database is completely unreachable.
func (s *diagnosticsService) Check(ctx context.Context) dto.DiagnosticsResponse {
	resp := dto.DiagnosticsResponse{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if !s.diagnosticsRepo.Connected() {
		return resp
	}

	resp.Database = "connected"
	resp.DatabaseURL = presenceFlag(s.cfg.DatabaseURL)
	resp.DatabaseName = presenceFlag(s.cfg.DatabaseName)

	names, err := s.diagnosticsRepo.ListCollectionNames(ctx, diagnosticsCollectionCap)
	if err != nil {
		s.LogDebug(ctx, "Diagnostics collection listing failed", slog.String("error", err.Error()))
		resp.Database = "connected but error: " + truncateError(err, 80)
		return resp
	}

	resp.Collections = names
	resp.ConnectionStatus = "connected"
	return resp
}

func presenceFlag(value string) string {
	if value != "" {
		return "set"
	}
	return "not set"
}

func truncateError(err error, max int) string {
	msg := err.Error()
	if len(msg) > max {
		return msg[:max]
	}
	return msg
}
