package auth

import (
	"net/http"
	"time"

	"github.com/internlink/internlink/pkg/errx"
	"github.com/internlink/internlink/pkg/kernel"
)

// Role identifies which side of the board a user is on
type Role string

const (
	RoleJobSeeker Role = "jobseeker"
	RoleEmployer  Role = "employer"
)

// IsValid reports whether the role is one of the known roles
func (r Role) IsValid() bool {
	return r == RoleJobSeeker || r == RoleEmployer
}

// AuthContext is the verified identity handed to handlers
type AuthContext struct {
	UserID kernel.UserID
	Role   Role
}

// TokenClaims are the claims embedded in an access token
type TokenClaims struct {
	UserID    kernel.UserID
	Role      Role
	ExpiresAt time.Time
}

// TokenService issues and validates access tokens
type TokenService interface {
	GenerateToken(userID kernel.UserID, role Role) (string, error)
	ValidateToken(token string) (*TokenClaims, error)
}

// Error Registry
var ErrRegistry = errx.NewRegistry("AUTH")

// Error codes
var (
	CodeMissingToken = ErrRegistry.Register("MISSING_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Missing authorization header")
	CodeInvalidToken = ErrRegistry.Register("INVALID_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid or expired token")
	CodeWrongRole    = ErrRegistry.Register("WRONG_ROLE", errx.TypeAuthorization, http.StatusForbidden, "Operation not allowed for this role")
)

// Helper functions
func ErrMissingToken() *errx.Error {
	return ErrRegistry.New(CodeMissingToken)
}

func ErrInvalidToken() *errx.Error {
	return ErrRegistry.New(CodeInvalidToken)
}

func ErrWrongRole() *errx.Error {
	return ErrRegistry.New(CodeWrongRole)
}
