// Package apierror provides the standardized error envelope for all HTTP
// responses. Internal details (stack traces, storage errors) never reach the
// client; each operation surfaces its own user-facing message through these
// types.
package apierror

// APIError is the canonical envelope for all 4xx/5xx responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError carries per-field failures from request validation.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validación", Fields: fields}
}
