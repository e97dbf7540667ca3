// Package session persists the CLI's login session (access token and the
// display name of the logged-in user) in a local SQLite database.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/expenzo/internal/client/migrations"
	"github.com/dmitrijs2005/expenzo/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/expenzo/internal/common"
	"github.com/dmitrijs2005/expenzo/internal/dbx"
	"github.com/dmitrijs2005/expenzo/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// ErrNoSession is returned by Load when the token or the username is missing.
var ErrNoSession = errors.New("no session")

type Session struct {
	Token    string
	Username string
}

// Store keeps the session under the keys "token" and "loggedInUser".
type Store struct {
	db *sql.DB
}

// RunMigrations applies the embedded client schema.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the session database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, fmt.Errorf("prepare session db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	// one connection keeps ":memory:" databases coherent
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate session db: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores both values atomically.
func (s *Store) Save(ctx context.Context, sess Session) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.SessionKeyToken, sess.Token); err != nil {
			return err
		}
		return repo.Set(ctx, common.SessionKeyUsername, sess.Username)
	})
}

func (s *Store) Load(ctx context.Context) (Session, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	token, ok, err := repo.Get(ctx, common.SessionKeyToken)
	if err != nil {
		return Session{}, err
	}
	if !ok || token == "" {
		return Session{}, ErrNoSession
	}

	username, ok, err := repo.Get(ctx, common.SessionKeyUsername)
	if err != nil {
		return Session{}, err
	}
	if !ok || username == "" {
		return Session{}, ErrNoSession
	}

	return Session{Token: token, Username: username}, nil
}

// Clear removes both keys. Clearing an empty store is not an error.
func (s *Store) Clear(ctx context.Context) error {
	return metadata.NewSQLiteRepository(s.db).Delete(ctx, common.SessionKeyToken, common.SessionKeyUsername)
}
