package usecase

import "time"

// maxExpenseAmount is the largest value NUMERIC(10,2) can hold.
const maxExpenseAmount = 99999999.99

// expenseDateLayout is the only accepted client-supplied date format.
const expenseDateLayout = "2006-01-02"

// ValidateAmount checks that an expense amount is positive and fits the
// stored precision. Zero and negative amounts are rejected.
func ValidateAmount(amount float64) bool {
	return amount > 0 && amount <= maxExpenseAmount
}

// ParseExpenseDate parses an explicit YYYY-MM-DD creation date.
func ParseExpenseDate(value string) (time.Time, error) {
	return time.Parse(expenseDateLayout, value)
}
