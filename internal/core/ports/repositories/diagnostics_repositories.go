package repositories

import "context"

// DiagnosticsRepositoryFacade reports gateway connectivity for
// operational visibility only; business logic never consults it.
type DiagnosticsRepositoryFacade interface {
	// Connected reports whether the gateway holds a live connection.
	Connected() bool
	// Ping verifies the connection end to end.
	Ping(ctx context.Context) error
	// ListCollectionNames lists up to limit known collection names.
	ListCollectionNames(ctx context.Context, limit int) ([]string, error)
}
