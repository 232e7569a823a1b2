// Package server wires the corpdesk application together: logging, the
// PostgreSQL pool and migrations, the services, the HTTP API and the
// refresh-token janitor, with graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/corpdesk/internal/logging"
	"github.com/dmitrijs2005/corpdesk/internal/server/config"
	"github.com/dmitrijs2005/corpdesk/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/corpdesk/internal/server/rest"
	"github.com/dmitrijs2005/corpdesk/internal/server/services"
)

const startupTimeout = 30 * time.Second

// seams for tests
var (
	openDB         = repomanager.Open
	newRepoManager = repomanager.NewPostgresRepositoryManager
	newLogger      = logging.New
)

type tokenSweeper interface {
	SweepExpired(ctx context.Context) (int64, error)
}

type App struct {
	config           *config.Config
	logger           logging.Logger
	db               *sql.DB
	authService      *services.AuthService
	userService      *services.UserService
	directoryService *services.DirectoryService
	sweeper          tokenSweeper
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger, err := newLogger(c.LogBackend)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	db, err := openDB(ctx, c.DatabaseDSN, c.DBMaxOpenConns)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := newRepoManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	as := services.NewAuthService(db, m, c)

	return &App{
		config:           c,
		logger:           logger,
		db:               db,
		authService:      as,
		userService:      services.NewUserService(db, m),
		directoryService: services.NewDirectoryService(db, m),
		sweeper:          as,
	}, nil
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := rest.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger,
		app.authService, app.userService, app.directoryService,
		app.config.SecretKey, app.config.AllowedOrigins)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// runTokenSweeper periodically purges expired refresh tokens until ctx is
// done. A non-positive interval disables it.
func (app *App) runTokenSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	logger := app.logger.With("module", "token_sweeper")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := app.sweeper.SweepExpired(ctx)
			if err != nil {
				logger.Error(ctx, "sweep failed", "error", err)
				continue
			}
			if n > 0 {
				logger.Info(ctx, "expired refresh tokens removed", "count", n)
			}
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.runTokenSweeper(ctx, app.config.TokenSweepInterval)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(context.Background(), "db close error", "error", err)
	}
	app.logger.Info(context.Background(), "App stopped")
}
