package errors

import "testing"

func TestSentinelErrorsAreDistinct(t *testing.T) {
	errs := []error{
		ErrAlreadyExists,
		ErrNotFound,
		ErrInvalidCredentials,
		ErrInvalidAmount,
		ErrInvalidDate,
	}
	seen := make(map[string]bool, len(errs))
	for _, err := range errs {
		if err == nil {
			t.Fatal("sentinel error is nil")
		}
		if seen[err.Error()] {
			t.Fatalf("duplicate error message %q", err.Error())
		}
		seen[err.Error()] = true
	}
}
