package application

import (
	"net/http"

	"github.com/internlink/internlink/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("APPLICATION")

// Error codes
var (
	CodeApplicationNotFound  = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Application not found")
	CodeDuplicateApplication = ErrRegistry.Register("DUPLICATE", errx.TypeConflict, http.StatusConflict, "Seeker has already applied to this job")
	CodeInvalidStatus        = ErrRegistry.Register("INVALID_STATUS", errx.TypeBusiness, http.StatusBadRequest, "Status must be Pending, Accepted or Rejected")
	CodeInvalidID            = ErrRegistry.Register("INVALID_ID", errx.TypeValidation, http.StatusBadRequest, "Malformed application id")
	CodeInvalidRequest       = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeNotOwner             = ErrRegistry.Register("NOT_OWNER", errx.TypeAuthorization, http.StatusForbidden, "Application belongs to another seeker")
	CodeJobNotOpen           = ErrRegistry.Register("JOB_NOT_OPEN", errx.TypeBusiness, http.StatusConflict, "Job posting is not accepting applications")
	CodeResumeNotFound       = ErrRegistry.Register("RESUME_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "No resume stored for this application")
	CodeInvalidResume        = ErrRegistry.Register("INVALID_RESUME", errx.TypeValidation, http.StatusBadRequest, "Resume payload is invalid")
	CodeResumeTooLarge       = ErrRegistry.Register("RESUME_TOO_LARGE", errx.TypeValidation, http.StatusBadRequest, "Resume exceeds the maximum allowed size")
)

// Helper functions
func ErrApplicationNotFound() *errx.Error {
	return ErrRegistry.New(CodeApplicationNotFound)
}

func ErrDuplicateApplication() *errx.Error {
	return ErrRegistry.New(CodeDuplicateApplication)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}

func ErrInvalidID() *errx.Error {
	return ErrRegistry.New(CodeInvalidID)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrNotOwner() *errx.Error {
	return ErrRegistry.New(CodeNotOwner)
}

func ErrJobNotOpen() *errx.Error {
	return ErrRegistry.New(CodeJobNotOpen)
}

func ErrResumeNotFound() *errx.Error {
	return ErrRegistry.New(CodeResumeNotFound)
}

func ErrInvalidResume() *errx.Error {
	return ErrRegistry.New(CodeInvalidResume)
}

func ErrResumeTooLarge() *errx.Error {
	return ErrRegistry.New(CodeResumeTooLarge)
}
