package seeker

import (
	"net/http"

	"github.com/internlink/internlink/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("SEEKER")

// Error codes
var (
	CodeProfileNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Seeker profile not found")
	CodeInvalidRequest  = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrProfileNotFound() *errx.Error {
	return ErrRegistry.New(CodeProfileNotFound)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
