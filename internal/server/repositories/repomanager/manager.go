package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/expenzo/internal/dbx"
	"github.com/dmitrijs2005/expenzo/internal/server/repositories/expenses"
	"github.com/dmitrijs2005/expenzo/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DB handle or transaction
// and owns schema migrations.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Expenses(db dbx.DBTX) expenses.Repository
}
