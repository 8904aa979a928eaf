package account

import (
	"time"

	"github.com/internlink/internlink/pkg/auth"
	"github.com/internlink/internlink/pkg/kernel"
)

// RegisterRequest - DTO for account registration
type RegisterRequest struct {
	Email    kernel.Email `json:"email"`
	Name     string       `json:"name"`
	Password string       `json:"password"`
	Role     auth.Role    `json:"role"`
}

// LoginRequest - DTO for login
type LoginRequest struct {
	Email    kernel.Email `json:"email"`
	Password string       `json:"password"`
}

// AccountResponse - DTO for returning account data, never the hash
type AccountResponse struct {
	ID        kernel.UserID `json:"id"`
	Email     kernel.Email  `json:"email"`
	Name      string        `json:"name"`
	Role      auth.Role     `json:"role"`
	CreatedAt time.Time     `json:"created_at"`
}

// SessionResponse - DTO for a successful login or registration
type SessionResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}

// ToResponse converts an Account to its response DTO
func (a *Account) ToResponse() AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
	}
}
