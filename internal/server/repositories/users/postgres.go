// Package users provides the PostgreSQL-backed user record store.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophworker/internal/dbx"
	"github.com/dmitrijs2005/gophworker/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, u *models.UserRecord) error {
	query := `
		INSERT INTO users (uid, worker_id, data, created_at, last_login)
		VALUES ($1, $2, $3, now(), now())
		RETURNING created_at, last_login
	`
	if err := r.db.QueryRowContext(ctx, query, u.UID, u.WorkerID, u.Data).Scan(&u.CreatedAt, &u.LastLogin); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, uid string) (*models.UserRecord, bool, error) {
	query := `
		SELECT uid, worker_id, data, created_at, last_login
		FROM users
		WHERE uid = $1
	`
	u := &models.UserRecord{}
	err := r.db.QueryRowContext(ctx, query, uid).Scan(&u.UID, &u.WorkerID, &u.Data, &u.CreatedAt, &u.LastLogin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("db error: %w", err)
	}
	return u, true, nil
}
