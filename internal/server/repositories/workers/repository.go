package workers

import (
	"context"

	"github.com/dmitrijs2005/gophworker/internal/server/models"
)

type Repository interface {
	// Create inserts the worker record and fills its store-assigned timestamps.
	// A worker id already held by another record yields common.ErrorWorkerIDTaken.
	Create(ctx context.Context, w *models.WorkerRecord) error
	Get(ctx context.Context, uid string) (w *models.WorkerRecord, found bool, err error)
	// LatestWorkerID returns the greatest worker id in the store.
	LatestWorkerID(ctx context.Context) (workerID string, found bool, err error)
}
