// Package accounts provides the PostgreSQL-backed identity store holding
// credentialed accounts.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophworker/internal/common"
	"github.com/dmitrijs2005/gophworker/internal/dbx"
	"github.com/dmitrijs2005/gophworker/internal/server/models"
)

const emailConstraint = "accounts_email_key"

// PostgresRepository implements Repository over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	query := `
		INSERT INTO accounts (id, email, password_salt, password_hash, email_verified, disabled)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		account.ID, account.Email, account.PasswordSalt, account.PasswordHash,
		account.EmailVerified, account.Disabled).Scan(&account.CreatedAt)

	if err != nil {
		if name, ok := dbx.UniqueViolation(err); ok && name == emailConstraint {
			return nil, fmt.Errorf("%w: %s", common.ErrorEmailTaken, account.Email)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.Account, bool, error) {
	query := `
		SELECT id, email, email_verified, disabled, created_at
		FROM accounts
		WHERE email = $1
	`
	a := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(&a.ID, &a.Email, &a.EmailVerified, &a.Disabled, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("db error: %w", err)
	}

	return a, true, nil
}
