// Package server initializes and runs the expenzo API server.
// It opens the database, applies migrations, builds the services and
// serves HTTP until SIGINT/SIGTERM.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/expenzo/internal/logging"
	"github.com/dmitrijs2005/expenzo/internal/server/config"
	"github.com/dmitrijs2005/expenzo/internal/server/httpapi"
	"github.com/dmitrijs2005/expenzo/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/expenzo/internal/server/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	handler http.Handler
}

// NewApp connects to the database, runs migrations and builds the HTTP
// handler. ctx bounds the background work started here.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger := logging.New(logging.Options{
		Build: c.BuildMode,
		Level: slog.LevelInfo,
		File:  c.LogFile,
		Attrs: []slog.Attr{slog.String("service", "expenzo-server")},
	})

	db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	app, err := newApp(ctx, c, logger, db, rm)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return app, nil
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger, db *sql.DB, rm repomanager.RepositoryManager) (*App, error) {
	trusted, err := httpapi.ParseTrustedProxies(c.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	us := services.NewUserService(db, rm, c)
	es := services.NewExpenseService(db, rm)
	ps := services.NewProductService()
	metrics := httpapi.NewMetrics()

	router := httpapi.NewRouter(ctx, httpapi.RouterDeps{
		Handlers:       httpapi.NewHandlers(us, es, ps, logger),
		Guard:          httpapi.NewGuard([]byte(c.SecretKey), logger, httpapi.WithGuardMetrics(metrics)),
		Metrics:        metrics,
		Logger:         logger,
		LoginRateLimit: c.LoginRateLimit,
		TrustedProxies: trusted,
	})

	return &App{config: c, logger: logger, db: db, handler: router}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until a termination signal arrives or ctx is done, then
// closes the database.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.handler, app.logger)
	err := s.Run(ctx)
	if err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error(ctx, "db close failed", "err", cerr)
	}
	app.logger.Info(ctx, "App stopped")
	return err
}
