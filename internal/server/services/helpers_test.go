package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/expenzo/internal/dbx"
	"github.com/dmitrijs2005/expenzo/internal/server/config"
	"github.com/dmitrijs2005/expenzo/internal/server/models"
	"github.com/dmitrijs2005/expenzo/internal/server/repositories/expenses"
	"github.com/dmitrijs2005/expenzo/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func newUserService(t *testing.T, db *sql.DB, rm *fakeRepoManager) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                   "k",
		AccessTokenValidityDuration: time.Hour,
	}
	s := NewUserService(db, rm, cfg)
	s.bcryptCost = bcrypt.MinCost
	return s
}

type fakeUsersRepo struct {
	created   *models.User
	createErr error

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = u
	return u, nil
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

// fakeExpensesRepo keeps records in memory, in insertion order.
type fakeExpensesRepo struct {
	items []*models.Expense

	createErr error
	listErr   error
	deleteErr error
}

func (f *fakeExpensesRepo) Create(ctx context.Context, e *models.Expense) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.items = append(f.items, e)
	return nil
}

func (f *fakeExpensesRepo) ListByUser(ctx context.Context, userID string) ([]*models.Expense, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []*models.Expense{}
	for _, e := range f.items {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpensesRepo) Delete(ctx context.Context, userID, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	kept := f.items[:0]
	for _, e := range f.items {
		if e.ID == id && e.UserID == userID {
			continue
		}
		kept = append(kept, e)
	}
	f.items = kept
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	e *fakeExpensesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository           { return m.u }
func (m *fakeRepoManager) Expenses(db dbx.DBTX) expenses.Repository     { return m.e }
