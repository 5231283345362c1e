package app

import (
	"context"

	"github.com/6631501193-blip/tracking-server/internal/domain/model"
	"github.com/6631501193-blip/tracking-server/internal/usecase"
)

// TrackerFacade aggregates application use cases behind a single surface
// consumed by the HTTP layer.
type TrackerFacade struct {
	auth      *usecase.AuthUseCase
	expenses  *usecase.ExpenseUseCase
	bootstrap *usecase.BootstrapUseCase
}

// NewTrackerFacade constructs TrackerFacade.
func NewTrackerFacade(auth *usecase.AuthUseCase, expenses *usecase.ExpenseUseCase, bootstrap *usecase.BootstrapUseCase) *TrackerFacade {
	return &TrackerFacade{auth: auth, expenses: expenses, bootstrap: bootstrap}
}

func (f *TrackerFacade) Register(ctx context.Context, name, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, name, password)
}

func (f *TrackerFacade) Authenticate(ctx context.Context, name, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, name, password)
}

func (f *TrackerFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *TrackerFacade) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *TrackerFacade) Expenses(ctx context.Context, userID int64) (*model.ExpenseReport, error) {
	return f.expenses.List(ctx, userID)
}

func (f *TrackerFacade) TodayExpenses(ctx context.Context, userID int64) (*model.ExpenseReport, error) {
	return f.expenses.ListToday(ctx, userID)
}

func (f *TrackerFacade) SearchExpenses(ctx context.Context, userID int64, keyword string) (*model.ExpenseReport, error) {
	return f.expenses.Search(ctx, userID, keyword)
}

func (f *TrackerFacade) AddExpense(ctx context.Context, userID int64, description string, amount float64, date string) (*model.Expense, error) {
	return f.expenses.Add(ctx, userID, description, amount, date)
}

func (f *TrackerFacade) UpdateExpense(ctx context.Context, id, userID int64, description string, amount float64) (*model.Expense, error) {
	return f.expenses.Update(ctx, id, userID, description, amount)
}

func (f *TrackerFacade) DeleteExpense(ctx context.Context, id, userID int64) error {
	return f.expenses.Delete(ctx, id, userID)
}

func (f *TrackerFacade) Bootstrap(ctx context.Context) error {
	return f.bootstrap.Run(ctx)
}
