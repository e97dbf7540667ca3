package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// openMetadata returns a private in-memory database with the client's
// session metadata table.
func openMetadata(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)
	return db
}

func storedKeys(t *testing.T, db *sql.DB) []string {
	t.Helper()
	rows, err := db.Query(`SELECT key FROM metadata ORDER BY key`)
	require.NoError(t, err)
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var k string
		require.NoError(t, rows.Scan(&k))
		keys = append(keys, k)
	}
	require.NoError(t, rows.Err())
	return keys
}

func put(ctx context.Context, tx DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO metadata(key, value) VALUES (?, ?)`, key, value)
	return err
}

func TestWithTx_SavesSessionPairTogether(t *testing.T) {
	db := openMetadata(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		if err := put(ctx, tx, "token", "jwt"); err != nil {
			return err
		}
		return put(ctx, tx, "loggedInUser", "Alice")
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"loggedInUser", "token"}, storedKeys(t, db))
}

func TestWithTx_HalfWrittenSessionIsRolledBack(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(ctx context.Context, tx DBTX) error
		panic bool
	}{
		{
			name: "second write fails",
			fn: func(ctx context.Context, tx DBTX) error {
				if err := put(ctx, tx, "token", "jwt"); err != nil {
					return err
				}
				// duplicate primary key
				return put(ctx, tx, "token", "again")
			},
		},
		{
			name: "caller gives up after the token",
			fn: func(ctx context.Context, tx DBTX) error {
				if err := put(ctx, tx, "token", "jwt"); err != nil {
					return err
				}
				return errors.New("username missing")
			},
		},
		{
			name:  "panic after the token",
			panic: true,
			fn: func(ctx context.Context, tx DBTX) error {
				if err := put(ctx, tx, "token", "jwt"); err != nil {
					return err
				}
				panic("kaput")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := openMetadata(t)

			run := func() error { return WithTx(context.Background(), db, nil, tt.fn) }
			if tt.panic {
				require.PanicsWithValue(t, "kaput", func() { _ = run() })
			} else {
				require.Error(t, run())
			}
			assert.Empty(t, storedKeys(t, db), "no key may survive a failed save")
		})
	}
}

func TestWithTx_BeginError(t *testing.T) {
	db := openMetadata(t)
	require.NoError(t, db.Close())

	called := false
	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		called = true
		return nil
	})
	require.ErrorContains(t, err, "begin tx")
	assert.False(t, called)
}

func TestWithTx_CommitError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM metadata`).WithArgs("token", "loggedInUser").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit().WillReturnError(errors.New("disk full"))

	err = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM metadata WHERE key IN (?, ?)`, "token", "loggedInUser")
		return err
	})
	require.ErrorContains(t, err, "commit tx: disk full")
	require.NoError(t, mock.ExpectationsWereMet())
}
