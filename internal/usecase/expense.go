package usecase

import (
	"context"
	"strings"
	"time"

	domainErrors "github.com/6631501193-blip/tracking-server/internal/domain/errors"
	"github.com/6631501193-blip/tracking-server/internal/domain/model"
	"github.com/6631501193-blip/tracking-server/internal/domain/repository"
)

// ExpenseUseCase manages per-user expense records.
type ExpenseUseCase struct {
	expenses repository.ExpenseRepository
}

// NewExpenseUseCase constructs ExpenseUseCase.
func NewExpenseUseCase(expenses repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{expenses: expenses}
}

// List returns all expenses of a user, newest first, with their sum.
func (u *ExpenseUseCase) List(ctx context.Context, userID int64) (*model.ExpenseReport, error) {
	items, err := u.expenses.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildReport(items), nil
}

// ListToday returns expenses created on the server's current calendar date.
func (u *ExpenseUseCase) ListToday(ctx context.Context, userID int64) (*model.ExpenseReport, error) {
	items, err := u.expenses.ListToday(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildReport(items), nil
}

// Search returns expenses whose description contains the keyword,
// case-insensitively.
func (u *ExpenseUseCase) Search(ctx context.Context, userID int64, keyword string) (*model.ExpenseReport, error) {
	items, err := u.expenses.Search(ctx, userID, keyword)
	if err != nil {
		return nil, err
	}
	return buildReport(items), nil
}

// Add validates and stores a new expense. An explicit YYYY-MM-DD date, when
// supplied, replaces the default insertion timestamp.
func (u *ExpenseUseCase) Add(ctx context.Context, userID int64, description string, amount float64, date string) (*model.Expense, error) {
	description = strings.TrimSpace(description)
	if !ValidateAmount(amount) {
		return nil, domainErrors.ErrInvalidAmount
	}

	var createdAt *time.Time
	if date != "" {
		parsed, err := ParseExpenseDate(date)
		if err != nil {
			return nil, domainErrors.ErrInvalidDate
		}
		createdAt = &parsed
	}

	return u.expenses.Create(ctx, userID, description, amount, createdAt)
}

// Update replaces description and amount of the expense owned by the user.
func (u *ExpenseUseCase) Update(ctx context.Context, id, userID int64, description string, amount float64) (*model.Expense, error) {
	description = strings.TrimSpace(description)
	if !ValidateAmount(amount) {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.expenses.Update(ctx, id, userID, description, amount)
}

// Delete removes the expense owned by the user. Identifiers of surviving
// rows are never touched.
func (u *ExpenseUseCase) Delete(ctx context.Context, id, userID int64) error {
	return u.expenses.Delete(ctx, id, userID)
}

func buildReport(items []model.Expense) *model.ExpenseReport {
	report := &model.ExpenseReport{Expenses: items}
	for _, e := range items {
		report.Total += e.Amount
	}
	return report
}
