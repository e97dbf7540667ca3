package server

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/expenzo/internal/common"
	"github.com/dmitrijs2005/expenzo/internal/dbx"
	"github.com/dmitrijs2005/expenzo/internal/logging"
	"github.com/dmitrijs2005/expenzo/internal/server/config"
	"github.com/dmitrijs2005/expenzo/internal/server/repositories/expenses"
	"github.com/dmitrijs2005/expenzo/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/expenzo/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pgRepos struct{}

func (pgRepos) RunMigrations(context.Context, *sql.DB) error { return nil }
func (pgRepos) Users(db dbx.DBTX) users.Repository          { return users.NewPostgresRepository(db) }
func (pgRepos) Expenses(db dbx.DBTX) expenses.Repository    { return expenses.NewPostgresRepository(db) }

var _ repomanager.RepositoryManager = pgRepos{}

func newTestApp(t *testing.T) (*App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.EndpointAddrHTTP = "127.0.0.1:0"
	cfg.SecretKey = "test-secret"

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	app, err := newApp(ctx, cfg, logging.Nop(), db, pgRepos{})
	require.NoError(t, err)
	return app, mock
}

func TestNewApp_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	app, err := NewApp(context.Background(), cfg)
	assert.Nil(t, app)
	assert.ErrorIs(t, err, common.ErrorValidation)
	assert.ErrorContains(t, err, "JWT secret is not set")
}

func TestNewApp_RejectsBadTrustedProxies(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "test-secret"
	cfg.TrustedProxies = []string{"proxy.local"}

	_, err = newApp(context.Background(), cfg, logging.Nop(), db, pgRepos{})
	assert.ErrorContains(t, err, "trusted proxy")
}

func TestApp_RoutesWired(t *testing.T) {
	app, _ := newTestApp(t)

	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, "PONG", rec.Body.String())

	rec = httptest.NewRecorder()
	app.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/expenses", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, mock := newTestApp(t)
	mock.ExpectClose()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
