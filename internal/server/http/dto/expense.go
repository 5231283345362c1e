package dto

import (
	"strconv"
	"time"

	"github.com/6631501193-blip/tracking-server/internal/domain/model"
)

// ExpenseResponse is the wire form of a single expense record.
type ExpenseResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExpenseListResponse carries a filtered listing plus the formatted sum of
// its amounts.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    string            `json:"total"`
}

// ExpenseRequest describes add/update payloads. The duplicated upstream
// variants disagreed on the field name, so both item and description are
// accepted; description wins when both are present.
type ExpenseRequest struct {
	UserID      int64    `json:"user_id"`
	Item        string   `json:"item"`
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
	Date        string   `json:"date"`
}

// Text returns the expense description regardless of which field carried it.
func (r ExpenseRequest) Text() string {
	if r.Description != "" {
		return r.Description
	}
	return r.Item
}

// DeleteExpenseResponse confirms a deletion.
type DeleteExpenseResponse struct {
	DeletedID int64 `json:"deleted_id"`
}

// MessageResponse carries an informational message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a caller-facing error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToExpenseResponse converts a domain expense to its wire form.
func ToExpenseResponse(e model.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		Description: e.Description,
		Amount:      e.Amount,
		CreatedAt:   e.CreatedAt,
	}
}

// ToExpenseListResponse converts a report, formatting the total to two
// fraction digits.
func ToExpenseListResponse(report *model.ExpenseReport) ExpenseListResponse {
	items := make([]ExpenseResponse, 0, len(report.Expenses))
	for _, e := range report.Expenses {
		items = append(items, ToExpenseResponse(e))
	}
	return ExpenseListResponse{
		Expenses: items,
		Total:    strconv.FormatFloat(report.Total, 'f', 2, 64),
	}
}
