package test

import (
	"context"
	"sort"
	"strings"
	"time"

	domainErrors "github.com/6631501193-blip/tracking-server/internal/domain/errors"
	"github.com/6631501193-blip/tracking-server/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[name]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Name: name, PasswordHash: passwordHash}
	s.Next++
	s.Users[name] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByName fetches user by name or returns not found.
func (s *UserRepositoryStub) GetByName(ctx context.Context, name string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[name]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ExpenseRepositoryStub keeps expenses in-memory and mimics the ordering and
// scoping behaviour of the real store. Function fields override individual
// operations when set.
type ExpenseRepositoryStub struct {
	Items []model.Expense
	Next  int64
	Err   error
	Now   func() time.Time

	CreateFn func(context.Context, int64, string, float64, *time.Time) (*model.Expense, error)
	ListFn   func(context.Context, int64) ([]model.Expense, error)
	TodayFn  func(context.Context, int64) ([]model.Expense, error)
	SearchFn func(context.Context, int64, string) ([]model.Expense, error)
	UpdateFn func(context.Context, int64, int64, string, float64) (*model.Expense, error)
	DeleteFn func(context.Context, int64, int64) error
}

func (s *ExpenseRepositoryStub) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create appends a record with a stable sequential identifier.
func (s *ExpenseRepositoryStub) Create(ctx context.Context, userID int64, description string, amount float64, createdAt *time.Time) (*model.Expense, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, description, amount, createdAt)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	ts := s.now()
	if createdAt != nil {
		ts = *createdAt
	}
	e := model.Expense{ID: s.Next, UserID: userID, Description: description, Amount: amount, CreatedAt: ts}
	s.Next++
	s.Items = append(s.Items, e)
	return &e, nil
}

// ListByUser returns the user's expenses newest first.
func (s *ExpenseRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Expense, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.filter(func(e model.Expense) bool { return e.UserID == userID }), nil
}

// ListToday returns the user's expenses created on the stub's current date.
func (s *ExpenseRepositoryStub) ListToday(ctx context.Context, userID int64) ([]model.Expense, error) {
	if s.TodayFn != nil {
		return s.TodayFn(ctx, userID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	y, m, d := s.now().Date()
	return s.filter(func(e model.Expense) bool {
		ey, em, ed := e.CreatedAt.Date()
		return e.UserID == userID && ey == y && em == m && ed == d
	}), nil
}

// Search matches description substrings case-insensitively.
func (s *ExpenseRepositoryStub) Search(ctx context.Context, userID int64, keyword string) ([]model.Expense, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, userID, keyword)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	needle := strings.ToLower(keyword)
	return s.filter(func(e model.Expense) bool {
		return e.UserID == userID && strings.Contains(strings.ToLower(e.Description), needle)
	}), nil
}

// Update rewrites description and amount of the owned record.
func (s *ExpenseRepositoryStub) Update(ctx context.Context, id, userID int64, description string, amount float64) (*model.Expense, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, userID, description, amount)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Items {
		if s.Items[i].ID == id && s.Items[i].UserID == userID {
			s.Items[i].Description = description
			s.Items[i].Amount = amount
			e := s.Items[i]
			return &e, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes the owned record, leaving remaining identifiers untouched.
func (s *ExpenseRepositoryStub) Delete(ctx context.Context, id, userID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id, userID)
	}
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Items {
		if s.Items[i].ID == id && s.Items[i].UserID == userID {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *ExpenseRepositoryStub) filter(keep func(model.Expense) bool) []model.Expense {
	var result []model.Expense
	for _, e := range s.Items {
		if keep(e) {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result
}

// SeederStub records seed invocations.
type SeederStub struct {
	Seeded [][]model.SeedUser
	Err    error
	SeedFn func(context.Context, []model.SeedUser) error
}

// Seed stores the seed set for inspection.
func (s *SeederStub) Seed(ctx context.Context, users []model.SeedUser) error {
	if s.SeedFn != nil {
		return s.SeedFn(ctx, users)
	}
	if s.Err != nil {
		return s.Err
	}
	s.Seeded = append(s.Seeded, users)
	return nil
}
