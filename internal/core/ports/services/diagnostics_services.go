package services

import (
	"context"

	"github.com/bizedge/bizedge_backend/internal/dto"
)

// DiagnosticsSvcFacade builds the /test connectivity report. Check
// never fails; degraded state is reported in the response fields.
type DiagnosticsSvcFacade interface {
	Check(ctx context.Context) dto.DiagnosticsResponse
}
