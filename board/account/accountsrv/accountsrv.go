package accountsrv

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/internlink/internlink/board/account"
	"github.com/internlink/internlink/pkg/auth"
	"github.com/internlink/internlink/pkg/errx"
	"github.com/internlink/internlink/pkg/kernel"
)

// AccountService provides registration and login
type AccountService struct {
	accountRepo  account.Repository
	tokenService auth.TokenService
}

// NewAccountService creates a new instance of the account service
func NewAccountService(
	accountRepo account.Repository,
	tokenService auth.TokenService,
) *AccountService {
	return &AccountService{
		accountRepo:  accountRepo,
		tokenService: tokenService,
	}
}

// Register creates a new account and returns a fresh session
func (s *AccountService) Register(ctx context.Context, req account.RegisterRequest) (*account.SessionResponse, error) {
	if !req.Role.IsValid() {
		return nil, account.ErrInvalidRole().WithDetail("role", string(req.Role))
	}

	email := kernel.Email(strings.ToLower(strings.TrimSpace(string(req.Email))))
	if email == "" || !strings.Contains(string(email), "@") {
		return nil, account.ErrInvalidRequest().WithDetail("email", "missing or malformed")
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, account.ErrInvalidRequest().WithDetail("name", "required")
	}

	now := time.Now()
	acc := &account.Account{
		ID:        kernel.NewUserID(uuid.NewString()),
		Email:     email,
		Name:      strings.TrimSpace(req.Name),
		Role:      req.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := acc.SetPassword(req.Password); err != nil {
		return nil, err
	}

	// The unique index on email is the real guard; racing registrations
	// resolve at the insert.
	if err := s.accountRepo.Create(ctx, acc); err != nil {
		var e *errx.Error
		if errors.As(err, &e) {
			return nil, e
		}
		return nil, errx.Wrap(err, "failed to create account", errx.TypeInternal)
	}

	return s.newSession(acc)
}

// Login verifies credentials and returns a session
func (s *AccountService) Login(ctx context.Context, req account.LoginRequest) (*account.SessionResponse, error) {
	email := kernel.Email(strings.ToLower(strings.TrimSpace(string(req.Email))))

	acc, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		// indistinguishable from a wrong password on purpose
		return nil, account.ErrInvalidCredentials()
	}

	if !acc.CheckPassword(req.Password) {
		return nil, account.ErrInvalidCredentials()
	}

	return s.newSession(acc)
}

// GetAccount retrieves the account behind a verified identity
func (s *AccountService) GetAccount(ctx context.Context, id kernel.UserID) (*account.AccountResponse, error) {
	acc, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := acc.ToResponse()
	return &resp, nil
}

func (s *AccountService) newSession(acc *account.Account) (*account.SessionResponse, error) {
	token, err := s.tokenService.GenerateToken(acc.ID, acc.Role)
	if err != nil {
		return nil, errx.Wrap(err, "failed to generate session token", errx.TypeInternal)
	}

	return &account.SessionResponse{
		Token:   token,
		Account: acc.ToResponse(),
	}, nil
}
