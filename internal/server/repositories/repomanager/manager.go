package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophworker/internal/dbx"
	"github.com/dmitrijs2005/gophworker/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/gophworker/internal/server/repositories/users"
	"github.com/dmitrijs2005/gophworker/internal/server/repositories/workers"
)

// RepositoryManager vends repositories bound to either a pool or a
// transaction, so a service can run several of them inside one dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Workers(db dbx.DBTX) workers.Repository
	Users(db dbx.DBTX) users.Repository
}
