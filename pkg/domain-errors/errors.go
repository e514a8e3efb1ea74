// Package domainerrors defines coded errors that cross module boundaries.
//
// Services and handlers return these so the transport layer can translate
// them into consistent HTTP responses without inspecting error strings.
// Infrastructure-level facts (not found, expired) live in
// pkg/platform/sentinel; this package is for caller-facing failures.
package domainerrors

import "net/http"

// Code identifies a class of domain error.
type Code string

const (
	CodeBadRequest   Code = "bad_request"
	CodeValidation   Code = "validation_error"
	CodeUnauthorized Code = "unauthorized"
	CodeNotFound     Code = "not_found"
	CodeTooLarge     Code = "payload_too_large"
	CodeUnavailable  Code = "unavailable"
	CodeInternal     Code = "internal_error"
)

// Error is a domain error with a stable code and a human-readable message.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// New constructs a domain error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// ToHTTPStatus maps a domain error code to an HTTP status code.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeValidation:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeTooLarge:
		return http.StatusRequestEntityTooLarge
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// AsDomain extracts a *Error from err, or wraps it as an internal error.
func AsDomain(err error) *Error {
	if de, ok := err.(*Error); ok {
		return de
	}
	return &Error{Code: CodeInternal, Message: err.Error()}
}
