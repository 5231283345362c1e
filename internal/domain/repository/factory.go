package repository

import (
	"context"

	"github.com/6631501193-blip/tracking-server/internal/domain/model"
)

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Expenses() ExpenseRepository
}

// Seeder inserts demo accounts and their sample expenses atomically.
// Implementations must be idempotent: seeding is skipped when any of the
// given accounts already exists.
type Seeder interface {
	Seed(ctx context.Context, users []model.SeedUser) error
}
