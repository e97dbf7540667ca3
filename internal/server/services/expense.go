package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/expenzo/internal/common"
	"github.com/dmitrijs2005/expenzo/internal/dbx"
	"github.com/dmitrijs2005/expenzo/internal/server/models"
	"github.com/dmitrijs2005/expenzo/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// TxDB is the database handle ExpenseService needs: plain queries for
// reads and transactions for mutate-then-list.
type TxDB interface {
	dbx.DBTX
	dbx.Beginner
}

// ExpenseService manages a user's expense records. Every mutation returns
// the user's full list read inside the same transaction, so callers can
// replace their copy instead of merging.
type ExpenseService struct {
	db          TxDB
	repomanager repomanager.RepositoryManager
}

func NewExpenseService(db TxDB, m repomanager.RepositoryManager) *ExpenseService {
	return &ExpenseService{db: db, repomanager: m}
}

// validID reports whether id can name a row; ids are UUID columns, so
// anything else matches nothing.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (s *ExpenseService) List(ctx context.Context, userID string) ([]*models.Expense, error) {
	if !validID(userID) {
		return []*models.Expense{}, nil
	}
	list, err := s.repomanager.Expenses(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return list, nil
}

// Add stores a new record for userID and returns the updated list.
func (s *ExpenseService) Add(ctx context.Context, userID, text string, amount float64) ([]*models.Expense, error) {
	if !validID(userID) {
		return nil, fmt.Errorf("%w: malformed user id %q", common.ErrorValidation, userID)
	}
	var list []*models.Expense
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Expenses(tx)
		e := &models.Expense{
			ID:     uuid.NewString(),
			UserID: userID,
			Text:   text,
			Amount: amount,
		}
		if err := repo.Create(ctx, e); err != nil {
			return fmt.Errorf("create expense: %w", err)
		}
		var err error
		list, err = repo.ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Delete removes the record when it belongs to userID and returns the
// updated list. Unknown or malformed ids leave the list unchanged.
func (s *ExpenseService) Delete(ctx context.Context, userID, id string) ([]*models.Expense, error) {
	if !validID(userID) || !validID(id) {
		return s.List(ctx, userID)
	}
	var list []*models.Expense
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Expenses(tx)
		if err := repo.Delete(ctx, userID, id); err != nil {
			return fmt.Errorf("delete expense: %w", err)
		}
		var err error
		list, err = repo.ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}
