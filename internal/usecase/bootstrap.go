package usecase

import (
	"context"
	"time"

	"github.com/6631501193-blip/tracking-server/internal/domain/model"
	"github.com/6631501193-blip/tracking-server/internal/domain/repository"
	pkgAuth "github.com/6631501193-blip/tracking-server/internal/pkg/auth"
)

// Demo accounts created by bootstrap. Passwords are fixed and hashed at
// seeding time.
var demoAccounts = []struct {
	Name     string
	Password string
	Expenses []model.SeedExpense
}{
	{
		Name:     "Lisa",
		Password: "1111",
	},
	{
		Name:     "Tom",
		Password: "2222",
		Expenses: []model.SeedExpense{
			{Description: "lunch", Amount: 50.00, CreatedAt: time.Date(2025, time.August, 20, 13, 27, 39, 0, time.UTC)},
			{Description: "bun", Amount: 20.00, CreatedAt: time.Date(2025, time.August, 20, 21, 2, 36, 0, time.UTC)},
		},
	},
}

// BootstrapUseCase seeds the store with demo accounts and sample expenses.
type BootstrapUseCase struct {
	seeder repository.Seeder
	hasher pkgAuth.PasswordHasher
}

// NewBootstrapUseCase constructs BootstrapUseCase.
func NewBootstrapUseCase(seeder repository.Seeder, hasher pkgAuth.PasswordHasher) *BootstrapUseCase {
	return &BootstrapUseCase{seeder: seeder, hasher: hasher}
}

// Run hashes the demo passwords and hands the seed set to the store.
// Safe to invoke repeatedly: the seeder skips accounts that already exist.
func (u *BootstrapUseCase) Run(ctx context.Context) error {
	users := make([]model.SeedUser, 0, len(demoAccounts))
	for _, account := range demoAccounts {
		hash, err := u.hasher.Hash(account.Password)
		if err != nil {
			return err
		}
		users = append(users, model.SeedUser{
			Name:         account.Name,
			PasswordHash: hash,
			Expenses:     account.Expenses,
		})
	}
	return u.seeder.Seed(ctx, users)
}
