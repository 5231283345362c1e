package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	domainErrors "github.com/6631501193-blip/tracking-server/internal/domain/errors"
	testhelpers "github.com/6631501193-blip/tracking-server/internal/test"
)

func TestExpenseUseCaseAddAndList(t *testing.T) {
	repo := &testhelpers.ExpenseRepositoryStub{}
	uc := NewExpenseUseCase(repo)
	ctx := context.Background()

	first, err := uc.Add(ctx, 1, "lunch", 50, "")
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("expected assigned identifier")
	}
	if _, err := uc.Add(ctx, 1, "bun", 20, ""); err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if _, err := uc.Add(ctx, 2, "coffee", 5, ""); err != nil {
		t.Fatalf("add returned error: %v", err)
	}

	report, err := uc.List(ctx, 1)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(report.Expenses) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(report.Expenses))
	}
	if report.Total != 70 {
		t.Fatalf("expected total 70, got %v", report.Total)
	}
	for _, e := range report.Expenses {
		if e.UserID != 1 {
			t.Fatalf("expense of other user leaked into listing: %+v", e)
		}
	}
}

func TestExpenseUseCaseListOrdering(t *testing.T) {
	base := time.Date(2025, time.August, 20, 12, 0, 0, 0, time.UTC)
	repo := &testhelpers.ExpenseRepositoryStub{}
	uc := NewExpenseUseCase(repo)
	ctx := context.Background()

	// Insert out of chronological order; two records share a timestamp.
	times := []time.Time{base.Add(time.Minute), base, base.Add(time.Minute)}
	for i, ts := range times {
		tsCopy := ts
		if _, err := repo.Create(ctx, 1, fmt.Sprintf("item-%d", i), 1, &tsCopy); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	report, err := uc.List(ctx, 1)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	for i := 1; i < len(report.Expenses); i++ {
		prev, cur := report.Expenses[i-1], report.Expenses[i]
		if cur.CreatedAt.After(prev.CreatedAt) {
			t.Fatalf("expenses not sorted by descending time: %+v", report.Expenses)
		}
		if cur.CreatedAt.Equal(prev.CreatedAt) && cur.ID > prev.ID {
			t.Fatalf("timestamp ties not broken by descending id: %+v", report.Expenses)
		}
	}
}

func TestExpenseUseCaseAddWithExplicitDate(t *testing.T) {
	repo := &testhelpers.ExpenseRepositoryStub{}
	uc := NewExpenseUseCase(repo)

	expense, err := uc.Add(context.Background(), 1, "train ticket", 12.5, "2025-08-20")
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	want := time.Date(2025, time.August, 20, 0, 0, 0, 0, time.UTC)
	if !expense.CreatedAt.Equal(want) {
		t.Fatalf("expected created_at %v, got %v", want, expense.CreatedAt)
	}
}

func TestExpenseUseCaseAddValidation(t *testing.T) {
	uc := NewExpenseUseCase(&testhelpers.ExpenseRepositoryStub{})
	ctx := context.Background()

	if _, err := uc.Add(ctx, 1, "lunch", 0, ""); err != domainErrors.ErrInvalidAmount {
		t.Fatalf("expected invalid amount for zero, got %v", err)
	}
	if _, err := uc.Add(ctx, 1, "lunch", -5, ""); err != domainErrors.ErrInvalidAmount {
		t.Fatalf("expected invalid amount for negative, got %v", err)
	}
	if _, err := uc.Add(ctx, 1, "lunch", 10, "20-08-2025"); err != domainErrors.ErrInvalidDate {
		t.Fatalf("expected invalid date, got %v", err)
	}
}

func TestExpenseUseCaseSearch(t *testing.T) {
	repo := &testhelpers.ExpenseRepositoryStub{}
	uc := NewExpenseUseCase(repo)
	ctx := context.Background()

	if _, err := uc.Add(ctx, 1, "Lunch Combo", 30, ""); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := uc.Add(ctx, 1, "bus fare", 3, ""); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	for _, keyword := range []string{"combo", "COMBO"} {
		report, err := uc.Search(ctx, 1, keyword)
		if err != nil {
			t.Fatalf("search returned error: %v", err)
		}
		if len(report.Expenses) != 1 || report.Expenses[0].Description != "Lunch Combo" {
			t.Fatalf("search %q returned %+v", keyword, report.Expenses)
		}
	}
}

func TestExpenseUseCaseListToday(t *testing.T) {
	now := time.Date(2025, time.August, 21, 10, 0, 0, 0, time.UTC)
	repo := &testhelpers.ExpenseRepositoryStub{Now: func() time.Time { return now }}
	uc := NewExpenseUseCase(repo)
	ctx := context.Background()

	yesterday := now.Add(-24 * time.Hour)
	if _, err := repo.Create(ctx, 1, "old", 5, &yesterday); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := uc.Add(ctx, 1, "fresh", 7, ""); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	report, err := uc.ListToday(ctx, 1)
	if err != nil {
		t.Fatalf("list today returned error: %v", err)
	}
	if len(report.Expenses) != 1 || report.Expenses[0].Description != "fresh" {
		t.Fatalf("unexpected today listing: %+v", report.Expenses)
	}
	if report.Total != 7 {
		t.Fatalf("expected total 7, got %v", report.Total)
	}
}

func TestExpenseUseCaseUpdate(t *testing.T) {
	repo := &testhelpers.ExpenseRepositoryStub{}
	uc := NewExpenseUseCase(repo)
	ctx := context.Background()

	created, err := uc.Add(ctx, 1, "lunch", 50, "")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	updated, err := uc.Update(ctx, created.ID, 1, "dinner", 60)
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Description != "dinner" || updated.Amount != 60 {
		t.Fatalf("unexpected updated record: %+v", updated)
	}
	if updated.ID != created.ID {
		t.Fatalf("identifier changed on update: %d -> %d", created.ID, updated.ID)
	}

	if _, err := uc.Update(ctx, created.ID, 2, "dinner", 60); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found for foreign owner, got %v", err)
	}
	if _, err := uc.Update(ctx, 999, 1, "dinner", 60); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found for missing id, got %v", err)
	}
	if _, err := uc.Update(ctx, created.ID, 1, "dinner", -1); err != domainErrors.ErrInvalidAmount {
		t.Fatalf("expected invalid amount, got %v", err)
	}
}

func TestExpenseUseCaseDelete(t *testing.T) {
	repo := &testhelpers.ExpenseRepositoryStub{}
	uc := NewExpenseUseCase(repo)
	ctx := context.Background()

	first, err := uc.Add(ctx, 1, "lunch", 50, "")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	second, err := uc.Add(ctx, 1, "bun", 20, "")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := uc.Delete(ctx, first.ID, 1); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}

	report, err := uc.List(ctx, 1)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(report.Expenses) != 1 {
		t.Fatalf("expected 1 expense after delete, got %d", len(report.Expenses))
	}
	// Surviving identifiers stay stable after deletion.
	if report.Expenses[0].ID != second.ID {
		t.Fatalf("surviving id changed: expected %d, got %d", second.ID, report.Expenses[0].ID)
	}

	if err := uc.Delete(ctx, first.ID, 1); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found on repeated delete, got %v", err)
	}
	if err := uc.Delete(ctx, second.ID, 2); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found for foreign owner, got %v", err)
	}
}
