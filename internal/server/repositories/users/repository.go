package users

import (
	"context"

	"github.com/dmitrijs2005/gophworker/internal/server/models"
)

type Repository interface {
	// Create inserts the user record and fills its store-assigned timestamps.
	Create(ctx context.Context, u *models.UserRecord) error
	Get(ctx context.Context, uid string) (u *models.UserRecord, found bool, err error)
}
