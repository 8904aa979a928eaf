package account

import (
	"time"

	"github.com/internlink/internlink/pkg/auth"
	"github.com/internlink/internlink/pkg/kernel"
	"golang.org/x/crypto/bcrypt"
)

// Account is a registered user, either a job seeker or an employer. The role
// is fixed at registration.
type Account struct {
	ID           kernel.UserID `db:"id" json:"id"`
	Email        kernel.Email  `db:"email" json:"email"`
	Name         string        `db:"name" json:"name"`
	Role         auth.Role     `db:"role" json:"role"`
	PasswordHash string        `db:"password_hash" json:"-"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updated_at"`
}

// SetPassword hashes and stores the password
func (a *Account) SetPassword(plain string) error {
	if len(plain) < 8 {
		return ErrWeakPassword()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (a *Account) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(plain)) == nil
}
