package client

import (
	"context"

	"github.com/dmitrijs2005/expenzo/internal/client/models"
)

type Client interface {
	Signup(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (*models.LoginResult, error)
	ListExpenses(ctx context.Context, token string) (*models.ExpensesResult, error)
	AddExpense(ctx context.Context, token, text string, amount float64) (*models.ExpensesResult, error)
	DeleteExpense(ctx context.Context, token, id string) (*models.ExpensesResult, error)
	Products(ctx context.Context, token string) ([]models.Product, error)
	Ping(ctx context.Context) error
}
