package handlers

import (
	"context"

	"github.com/6631501193-blip/tracking-server/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, name, password string) (*model.User, string, error)
	ParseToken(token string) (int64, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
}

// ExpenseFacade encapsulates expense operations exposed via HTTP.
type ExpenseFacade interface {
	Expenses(ctx context.Context, userID int64) (*model.ExpenseReport, error)
	TodayExpenses(ctx context.Context, userID int64) (*model.ExpenseReport, error)
	SearchExpenses(ctx context.Context, userID int64, keyword string) (*model.ExpenseReport, error)
	AddExpense(ctx context.Context, userID int64, description string, amount float64, date string) (*model.Expense, error)
	UpdateExpense(ctx context.Context, id, userID int64, description string, amount float64) (*model.Expense, error)
	DeleteExpense(ctx context.Context, id, userID int64) error
}

// BootstrapFacade provides one-time schema and seed initialization.
type BootstrapFacade interface {
	Bootstrap(ctx context.Context) error
}

// TrackerFacade aggregates the full set of operations used across handlers.
type TrackerFacade interface {
	AuthFacade
	ExpenseFacade
	BootstrapFacade
}
