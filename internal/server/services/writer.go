package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophworker/internal/dbx"
	"github.com/dmitrijs2005/gophworker/internal/server/models"
	"github.com/dmitrijs2005/gophworker/internal/server/repositories/repomanager"
)

// RecordWriter persists a worker record and its user record in a single
// transaction. It does no validation of its own.
type RecordWriter struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewRecordWriter(db *sql.DB, m repomanager.RepositoryManager) *RecordWriter {
	return &RecordWriter{db: db, repomanager: m}
}

// WriteAtomically keys both records by uid and commits them together. On
// any error neither record is persisted. Store-assigned timestamps are
// written back into worker and user.
func (w *RecordWriter) WriteAtomically(ctx context.Context, uid string, worker *models.WorkerRecord, user *models.UserRecord) error {
	worker.UID = uid
	user.UID = uid

	return dbx.WithTx(ctx, w.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := w.repomanager.Workers(tx).Create(ctx, worker); err != nil {
			return err
		}
		return w.repomanager.Users(tx).Create(ctx, user)
	})
}
