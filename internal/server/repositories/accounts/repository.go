package accounts

import (
	"context"

	"github.com/dmitrijs2005/gophworker/internal/server/models"
)

// Repository is the identity store.
type Repository interface {
	// Create inserts a new account. A duplicate email yields common.ErrorEmailTaken.
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	// FindByEmail reports found=false with a nil error when no account has
	// the email; err is reserved for store failures.
	FindByEmail(ctx context.Context, email string) (account *models.Account, found bool, err error)
}
