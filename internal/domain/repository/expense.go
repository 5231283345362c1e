package repository

import (
	"context"
	"time"

	"github.com/6631501193-blip/tracking-server/internal/domain/model"
)

// ExpenseRepository describes persistence operations for expense records.
// Every mutation is scoped by the owning user; a mismatch surfaces as
// ErrNotFound rather than touching another user's rows.
type ExpenseRepository interface {
	Create(ctx context.Context, userID int64, description string, amount float64, createdAt *time.Time) (*model.Expense, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Expense, error)
	ListToday(ctx context.Context, userID int64) ([]model.Expense, error)
	Search(ctx context.Context, userID int64, keyword string) ([]model.Expense, error)
	Update(ctx context.Context, id, userID int64, description string, amount float64) (*model.Expense, error)
	Delete(ctx context.Context, id, userID int64) error
}
