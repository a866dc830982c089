// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a referenced item, location, or ledger row that does
// not exist or is not owned by the caller. Handlers map it to 404; the two
// causes are indistinguishable to the caller.
var ErrNotFound = errors.New("not found")

// ValidationError marks request input rejected before any mutation.
// Handlers map it to 400.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// UpstreamError marks a failure of an external collaborator (UPC lookup,
// vision model) or missing external configuration such as an API key.
// Handlers map it to 500 and surface the message for diagnostics.
type UpstreamError struct {
	Service string
	Err     error
}

func NewUpstreamError(service string, err error) *UpstreamError {
	return &UpstreamError{Service: service, Err: err}
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
