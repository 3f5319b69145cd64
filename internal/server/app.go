// Package server wires the provisioning server together: it opens the
// database, applies migrations, builds the services and runs the gRPC
// endpoint until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gophworker/internal/logging"
	"github.com/dmitrijs2005/gophworker/internal/server/config"
	"github.com/dmitrijs2005/gophworker/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophworker/internal/server/services"

	gs "github.com/dmitrijs2005/gophworker/internal/server/grpc"
)

// seams for tests
var (
	openDB               = repomanager.OpenDB
	newRepositoryManager = repomanager.NewPostgresRepositoryManager
)

var logOutput io.Writer = os.Stdout

type App struct {
	config       *config.Config
	logger       logging.Logger
	db           *sql.DB
	provisioning *services.ProvisioningService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(logOutput, c.LogLevel)

	db, err := openDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := newRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	ps := services.NewProvisioningService(db, rm, c, logger)

	return &App{config: c, logger: logger, db: db, provisioning: ps}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.provisioning, app.config.SecretKey, app.config.RequestTimeout)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// closes the database.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}

	app.logger.Info(ctx, "App stopped")
}
