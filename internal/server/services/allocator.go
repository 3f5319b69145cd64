package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophworker/internal/dbx"
	"github.com/dmitrijs2005/gophworker/internal/logging"
	"github.com/dmitrijs2005/gophworker/internal/server/repositories/repomanager"
)

// WorkerIDAllocator hands out worker ids of the form PREFIX + zero-padded
// number by reading the current maximum and adding one.
//
// Two concurrent calls may read the same maximum and return the same id.
// The workers table rejects the second write through its unique index and
// ProvisioningService retries with a fresh id.
type WorkerIDAllocator struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	prefix      string
	width       int
	now         func() time.Time
	logger      logging.Logger
}

func NewWorkerIDAllocator(db dbx.DBTX, m repomanager.RepositoryManager, prefix string, width int, logger logging.Logger) *WorkerIDAllocator {
	return &WorkerIDAllocator{
		db:          db,
		repomanager: m,
		prefix:      prefix,
		width:       width,
		now:         time.Now,
		logger:      logger.With("module", "worker_id_allocator"),
	}
}

// Next returns the id following the greatest one in the store, or
// PREFIX0001 on an empty store. It never fails: when the store cannot be
// queried the id is PREFIX + current unix milliseconds.
func (a *WorkerIDAllocator) Next(ctx context.Context) string {
	latest, found, err := a.repomanager.Workers(a.db).LatestWorkerID(ctx)
	if err != nil {
		id := a.fallback()
		a.logger.Warn(ctx, "worker id query failed, using timestamp id", "error", err, "worker_id", id)
		return id
	}

	next := 1
	if found {
		next = ParseWorkerNumber(latest, a.prefix) + 1
	}
	return FormatWorkerID(a.prefix, a.width, next)
}

func (a *WorkerIDAllocator) fallback() string {
	return a.prefix + strconv.FormatInt(a.now().UnixMilli(), 10)
}

// FormatWorkerID pads n with zeros to width digits. Larger numbers are
// written in full.
func FormatWorkerID(prefix string, width int, n int) string {
	return fmt.Sprintf("%s%0*d", prefix, width, n)
}

// ParseWorkerNumber strips prefix from id and reads the leading decimal
// digits of the rest. An empty or non-numeric remainder counts as 0.
func ParseWorkerNumber(id, prefix string) int {
	rest := strings.TrimPrefix(id, prefix)

	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}

	n, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0
	}
	return n
}
