package errx

import (
	"fmt"
	"net/http"
)

// Type classifies errors for propagation policy decisions
type Type string

const (
	TypeValidation     Type = "VALIDATION"
	TypeNotFound       Type = "NOT_FOUND"
	TypeConflict       Type = "CONFLICT"
	TypeBusiness       Type = "BUSINESS"
	TypeAuthentication Type = "AUTHENTICATION"
	TypeAuthorization  Type = "AUTHORIZATION"
	TypeExternal       Type = "EXTERNAL"
	TypeInternal       Type = "INTERNAL"
)

// Error is a structured application error carrying an HTTP mapping
type Error struct {
	Code       string         `json:"code"`
	Type       Type           `json:"type"`
	HTTPStatus int            `json:"-"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	cause      error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is/As
func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetail attaches a key/value pair to the error
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause attaches an underlying error
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// ToHTTPResponse returns the JSON body for the error response
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"code":    e.Code,
		"type":    e.Type,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

// ============================================================================
// Registry
// ============================================================================

// ErrorCode describes a registered error template
type ErrorCode struct {
	Code       string
	Type       Type
	HTTPStatus int
	Message    string
}

// Registry holds the error codes for one domain, prefixed with its name
type Registry struct {
	prefix string
	codes  map[string]ErrorCode
}

// NewRegistry creates a registry for a domain prefix (e.g. "APPLICATION")
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		codes:  make(map[string]ErrorCode),
	}
}

// Register adds an error code to the registry and returns it
func (r *Registry) Register(code string, t Type, httpStatus int, message string) ErrorCode {
	full := r.prefix + ":" + code
	ec := ErrorCode{
		Code:       full,
		Type:       t,
		HTTPStatus: httpStatus,
		Message:    message,
	}
	r.codes[full] = ec
	return ec
}

// New instantiates a fresh error from a registered code
func (r *Registry) New(code ErrorCode) *Error {
	return &Error{
		Code:       code.Code,
		Type:       code.Type,
		HTTPStatus: code.HTTPStatus,
		Message:    code.Message,
	}
}

// Wrap converts an arbitrary error into an *Error with the given type
func Wrap(err error, message string, t Type) *Error {
	status := http.StatusInternalServerError
	switch t {
	case TypeValidation:
		status = http.StatusBadRequest
	case TypeNotFound:
		status = http.StatusNotFound
	case TypeConflict:
		status = http.StatusConflict
	case TypeAuthentication:
		status = http.StatusUnauthorized
	case TypeAuthorization:
		status = http.StatusForbidden
	case TypeExternal:
		status = http.StatusBadGateway
	}

	return &Error{
		Code:       string(t),
		Type:       t,
		HTTPStatus: status,
		Message:    message,
		cause:      err,
	}
}
