package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDBUnavailable indicates that the database gateway is not connected.
// Handlers map this to a service-unavailable response.
var ErrDBUnavailable = errors.New("database not available")

// ErrInvalidID indicates that a supplied identifier is not a valid
// database object id. Invoice posting skips stock adjustments for
// items carrying one instead of failing the request.
var ErrInvalidID = errors.New("invalid object id")
