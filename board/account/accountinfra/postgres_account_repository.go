package accountinfra

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/internlink/internlink/board/account"
	"github.com/internlink/internlink/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresAccountRepository implements account.Repository using PostgreSQL
type PostgresAccountRepository struct {
	db *sqlx.DB
}

// NewPostgresAccountRepository creates a new PostgreSQL account repository
func NewPostgresAccountRepository(db *sqlx.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{
		db: db,
	}
}

const accountColumns = `id, email, name, role, password_hash, created_at, updated_at`

// Create inserts a new account. The unique index on email maps duplicate
// registrations to ErrEmailTaken.
func (r *PostgresAccountRepository) Create(ctx context.Context, acc *account.Account) error {
	query := `
		INSERT INTO accounts (
			id, email, name, role, password_hash, created_at, updated_at
		) VALUES (
			:id, :email, :name, :role, :password_hash, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, acc)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return account.ErrEmailTaken()
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// GetByID retrieves an account by ID
func (r *PostgresAccountRepository) GetByID(ctx context.Context, id kernel.UserID) (*account.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	var acc account.Account
	err := r.db.GetContext(ctx, &acc, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrAccountNotFound()
		}
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}

	return &acc, nil
}

// GetByEmail retrieves an account by email
func (r *PostgresAccountRepository) GetByEmail(ctx context.Context, email kernel.Email) (*account.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`

	var acc account.Account
	err := r.db.GetContext(ctx, &acc, query, string(email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrAccountNotFound()
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	return &acc, nil
}
