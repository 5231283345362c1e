package model

import "time"

// Expense describes a single spending record owned by a user.
type Expense struct {
	ID          int64
	UserID      int64
	Description string
	Amount      float64
	CreatedAt   time.Time
}

// ExpenseReport bundles a filtered listing with the sum of its amounts.
type ExpenseReport struct {
	Expenses []Expense
	Total    float64
}

// SeedExpense is a fixed expense row inserted during bootstrap.
type SeedExpense struct {
	Description string
	Amount      float64
	CreatedAt   time.Time
}

// SeedUser is a demo account inserted during bootstrap together with its
// sample expenses.
type SeedUser struct {
	Name         string
	PasswordHash string
	Expenses     []SeedExpense
}
