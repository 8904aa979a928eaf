package message

import (
	"net/http"

	"github.com/internlink/internlink/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("MESSAGE")

// Error codes
var (
	CodeInvalidRequest = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeEmptyBody      = ErrRegistry.Register("EMPTY_BODY", errx.TypeValidation, http.StatusBadRequest, "Message body must not be empty")
	CodeSelfMessage    = ErrRegistry.Register("SELF_MESSAGE", errx.TypeBusiness, http.StatusBadRequest, "Cannot message yourself")
)

// Helper functions
func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrEmptyBody() *errx.Error {
	return ErrRegistry.New(CodeEmptyBody)
}

func ErrSelfMessage() *errx.Error {
	return ErrRegistry.New(CodeSelfMessage)
}
