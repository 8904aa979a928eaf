package posting

import (
	"net/http"

	"github.com/internlink/internlink/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("POSTING")

// Error codes
var (
	CodePostingNotFound         = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job posting not found")
	CodePostingAlreadyExists    = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Job posting already exists")
	CodePostingAlreadyPublished = ErrRegistry.Register("ALREADY_PUBLISHED", errx.TypeBusiness, http.StatusConflict, "Job posting is already published")
	CodeNotOwner                = ErrRegistry.Register("NOT_OWNER", errx.TypeAuthorization, http.StatusForbidden, "Job posting belongs to another employer")
	CodeInvalidKind             = ErrRegistry.Register("INVALID_KIND", errx.TypeValidation, http.StatusBadRequest, "Job kind must be internship or adhoc")
	CodeInvalidID               = ErrRegistry.Register("INVALID_ID", errx.TypeValidation, http.StatusBadRequest, "Malformed job posting id")
	CodeInvalidRequest          = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeValidationFailed        = ErrRegistry.Register("VALIDATION_FAILED", errx.TypeValidation, http.StatusBadRequest, "Job posting is missing required fields")
)

// Helper functions
func ErrPostingNotFound() *errx.Error {
	return ErrRegistry.New(CodePostingNotFound)
}

func ErrPostingAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodePostingAlreadyExists)
}

func ErrPostingAlreadyPublished() *errx.Error {
	return ErrRegistry.New(CodePostingAlreadyPublished)
}

func ErrNotOwner() *errx.Error {
	return ErrRegistry.New(CodeNotOwner)
}

func ErrInvalidKind() *errx.Error {
	return ErrRegistry.New(CodeInvalidKind)
}

func ErrInvalidID() *errx.Error {
	return ErrRegistry.New(CodeInvalidID)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrValidationFailed() *errx.Error {
	return ErrRegistry.New(CodeValidationFailed)
}
