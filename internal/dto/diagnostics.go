package dto

// DiagnosticsResponse is the body of GET /test. It always renders,
// reporting degraded status fields instead of failing when the
// database is unreachable.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
