// Package expenses declares and implements persistence of expense records.
package expenses

import (
	"context"

	"github.com/dmitrijs2005/expenzo/internal/server/models"
)

// Repository stores expense records. Every method is scoped to a user.
type Repository interface {
	Create(ctx context.Context, e *models.Expense) error
	ListByUser(ctx context.Context, userID string) ([]*models.Expense, error)
	// Delete removes the record if it belongs to userID. Deleting a missing
	// or foreign record is not an error.
	Delete(ctx context.Context, userID, id string) error
}
