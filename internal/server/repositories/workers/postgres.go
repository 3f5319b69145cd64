// Package workers provides the PostgreSQL-backed worker record store.
package workers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophworker/internal/common"
	"github.com/dmitrijs2005/gophworker/internal/dbx"
	"github.com/dmitrijs2005/gophworker/internal/server/models"
)

const workerIDConstraint = "workers_worker_id_key"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, w *models.WorkerRecord) error {
	query := `
		INSERT INTO workers (uid, worker_id, data, created_at, last_active)
		VALUES ($1, $2, $3, now(), now())
		RETURNING created_at, last_active
	`
	err := r.db.QueryRowContext(ctx, query, w.UID, w.WorkerID, w.Data).Scan(&w.CreatedAt, &w.LastActive)
	if err != nil {
		if name, ok := dbx.UniqueViolation(err); ok && name == workerIDConstraint {
			return fmt.Errorf("%w: %s", common.ErrorWorkerIDTaken, w.WorkerID)
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, uid string) (*models.WorkerRecord, bool, error) {
	query := `
		SELECT uid, worker_id, data, created_at, last_active
		FROM workers
		WHERE uid = $1
	`
	w := &models.WorkerRecord{}
	err := r.db.QueryRowContext(ctx, query, uid).Scan(&w.UID, &w.WorkerID, &w.Data, &w.CreatedAt, &w.LastActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("db error: %w", err)
	}
	return w, true, nil
}

// LatestWorkerID orders by length first so that ids grown past the pad
// width (HM_10000) still sort above shorter ones (HM_9999). Within one
// length the order is plain lexicographic. A malformed id is therefore
// picked only when no well-formed id is longer: next to HM_0007, HM_abc
// is skipped (next is HM_0008) while HM_abcd wins (next is HM_0001).
func (r *PostgresRepository) LatestWorkerID(ctx context.Context) (string, bool, error) {
	query := `
		SELECT worker_id
		FROM workers
		ORDER BY length(worker_id) DESC, worker_id DESC
		LIMIT 1
	`
	var id string
	err := r.db.QueryRowContext(ctx, query).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("db error: %w", err)
	}
	return id, true, nil
}
