package test

import (
	"context"
	"time"

	"github.com/6631501193-blip/tracking-server/internal/domain/model"
	pkgAuth "github.com/6631501193-blip/tracking-server/internal/pkg/auth"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseTokenFn   func(string) (int64, error)
	UserByIDFn     func(context.Context, int64) (*model.User, error)
}

// Register delegates to the override or returns a fixed user.
func (s AuthFacadeStub) Register(ctx context.Context, name, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, password)
	}
	return &model.User{ID: 1, Name: name}, "token", nil
}

// Authenticate delegates to the override or returns a fixed user.
func (s AuthFacadeStub) Authenticate(ctx context.Context, name, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, name, password)
	}
	return &model.User{ID: 1, Name: name}, "token", nil
}

// ParseToken resolves tokens via the override.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return 1, nil
}

// UserByID returns the configured user.
func (s AuthFacadeStub) UserByID(ctx context.Context, id int64) (*model.User, error) {
	if s.UserByIDFn != nil {
		return s.UserByIDFn(ctx, id)
	}
	return &model.User{ID: id, Name: "user"}, nil
}

// ExpenseFacadeStub simulates expense operations.
type ExpenseFacadeStub struct {
	ExpensesFn func(context.Context, int64) (*model.ExpenseReport, error)
	TodayFn    func(context.Context, int64) (*model.ExpenseReport, error)
	SearchFn   func(context.Context, int64, string) (*model.ExpenseReport, error)
	AddFn      func(context.Context, int64, string, float64, string) (*model.Expense, error)
	UpdateFn   func(context.Context, int64, int64, string, float64) (*model.Expense, error)
	DeleteFn   func(context.Context, int64, int64) error
}

func defaultReport(userID int64) *model.ExpenseReport {
	return &model.ExpenseReport{
		Expenses: []model.Expense{{ID: 1, UserID: userID, Description: "lunch", Amount: 50, CreatedAt: time.Unix(0, 0)}},
		Total:    50,
	}
}

// Expenses returns the configured or default report.
func (s ExpenseFacadeStub) Expenses(ctx context.Context, userID int64) (*model.ExpenseReport, error) {
	if s.ExpensesFn != nil {
		return s.ExpensesFn(ctx, userID)
	}
	return defaultReport(userID), nil
}

// TodayExpenses returns the configured or default report.
func (s ExpenseFacadeStub) TodayExpenses(ctx context.Context, userID int64) (*model.ExpenseReport, error) {
	if s.TodayFn != nil {
		return s.TodayFn(ctx, userID)
	}
	return defaultReport(userID), nil
}

// SearchExpenses returns the configured or default report.
func (s ExpenseFacadeStub) SearchExpenses(ctx context.Context, userID int64, keyword string) (*model.ExpenseReport, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, userID, keyword)
	}
	return defaultReport(userID), nil
}

// AddExpense stores nothing and echoes a created record.
func (s ExpenseFacadeStub) AddExpense(ctx context.Context, userID int64, description string, amount float64, date string) (*model.Expense, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, description, amount, date)
	}
	return &model.Expense{ID: 1, UserID: userID, Description: description, Amount: amount, CreatedAt: time.Unix(0, 0)}, nil
}

// UpdateExpense echoes the updated record.
func (s ExpenseFacadeStub) UpdateExpense(ctx context.Context, id, userID int64, description string, amount float64) (*model.Expense, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, userID, description, amount)
	}
	return &model.Expense{ID: id, UserID: userID, Description: description, Amount: amount, CreatedAt: time.Unix(0, 0)}, nil
}

// DeleteExpense succeeds unless overridden.
func (s ExpenseFacadeStub) DeleteExpense(ctx context.Context, id, userID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id, userID)
	}
	return nil
}

// BootstrapFacadeStub simulates bootstrap runs.
type BootstrapFacadeStub struct {
	BootstrapFn func(context.Context) error
	Calls       int
}

// Bootstrap counts invocations and delegates to the override.
func (s *BootstrapFacadeStub) Bootstrap(ctx context.Context) error {
	s.Calls++
	if s.BootstrapFn != nil {
		return s.BootstrapFn(ctx)
	}
	return nil
}

// TrackerFacadeStub aggregates the stubs into the full handler surface.
type TrackerFacadeStub struct {
	AuthFacadeStub
	ExpenseFacadeStub
	*BootstrapFacadeStub
}

// NewTrackerFacadeStub builds an aggregate stub with defaults.
func NewTrackerFacadeStub() *TrackerFacadeStub {
	return &TrackerFacadeStub{BootstrapFacadeStub: &BootstrapFacadeStub{}}
}
