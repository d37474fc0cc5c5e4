// Package apperr defines the stable API error taxonomy. Every domain error
// is raised at the point of detection and propagates unmodified to the HTTP
// boundary, which maps the code to a status.
package apperr

import (
	"errors"
	"net/http"
)

// Code is a stable, client-facing error code.
type Code string

const (
	CodeInvalidRequest Code = "INVALID_REQUEST"
	CodeUnauthorized   Code = "UNAUTHORIZED"
	CodeForbidden      Code = "FORBIDDEN"
	CodeNotFound       Code = "NOT_FOUND"
	CodeConflict       Code = "CONFLICT"
	CodeInternalError  Code = "INTERNAL_ERROR"
	CodeUnknown        Code = "UNKNOWN"
)

// Error carries a stable code plus an optional human-readable description.
type Error struct {
	Code        Code   `json:"code"`
	Description string `json:"description,omitempty"`
	Detail      any    `json:"detail,omitempty"`
}

func (e *Error) Error() string {
	if e.Description == "" {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Description
}

// HTTPStatus maps the code to its HTTP status.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeInvalidRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// InvalidRequest flags malformed input, such as a bad date range or a
// duplicate signup email.
func InvalidRequest(desc string) *Error {
	return &Error{Code: CodeInvalidRequest, Description: desc}
}

// Unauthorized flags a missing, invalid or expired credential.
func Unauthorized() *Error {
	return &Error{Code: CodeUnauthorized}
}

// Forbidden flags an authenticated but not permitted operation.
func Forbidden() *Error {
	return &Error{Code: CodeForbidden}
}

// NotFound covers both unknown ids and plans that fail the visibility check;
// the two are deliberately indistinguishable to the caller.
func NotFound() *Error {
	return &Error{Code: CodeNotFound}
}

// Conflict is reserved; no operation currently raises it.
func Conflict(desc string) *Error {
	return &Error{Code: CodeConflict, Description: desc}
}

// Internal wraps an unexpected failure.
func Internal(desc string) *Error {
	return &Error{Code: CodeInternalError, Description: desc}
}

// Unknown is the generic 500-equivalent fallback.
func Unknown() *Error {
	return &Error{Code: CodeUnknown, Description: "Unknown error"}
}

// From converts any error into an *Error, passing through values that
// already carry a code and wrapping everything else as UNKNOWN.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Unknown()
}
