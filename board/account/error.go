package account

import (
	"net/http"

	"github.com/internlink/internlink/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("ACCOUNT")

// Error codes
var (
	CodeAccountNotFound    = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Account not found")
	CodeEmailTaken         = ErrRegistry.Register("EMAIL_TAKEN", errx.TypeConflict, http.StatusConflict, "Email is already registered")
	CodeInvalidCredentials = ErrRegistry.Register("INVALID_CREDENTIALS", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid email or password")
	CodeInvalidRole        = ErrRegistry.Register("INVALID_ROLE", errx.TypeValidation, http.StatusBadRequest, "Role must be jobseeker or employer")
	CodeWeakPassword       = ErrRegistry.Register("WEAK_PASSWORD", errx.TypeValidation, http.StatusBadRequest, "Password must be at least 8 characters")
	CodeInvalidRequest     = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrAccountNotFound() *errx.Error {
	return ErrRegistry.New(CodeAccountNotFound)
}

func ErrEmailTaken() *errx.Error {
	return ErrRegistry.New(CodeEmailTaken)
}

func ErrInvalidCredentials() *errx.Error {
	return ErrRegistry.New(CodeInvalidCredentials)
}

func ErrInvalidRole() *errx.Error {
	return ErrRegistry.New(CodeInvalidRole)
}

func ErrWeakPassword() *errx.Error {
	return ErrRegistry.New(CodeWeakPassword)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
