package dto

// CreateResponse carries the generated identifier of a newly stored
// record, as a hex string under the stable "id" key.
type CreateResponse struct {
	ID string `json:"id"`
}

// ErrorResponse carries a human-readable error detail.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// FieldError identifies one offending field and the constraint it
// violated, mirroring framework-level validation output.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ValidationErrorResponse is the body of a 422 response.
type ValidationErrorResponse struct {
	Detail []FieldError `json:"detail"`
}
