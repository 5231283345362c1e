package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/6631501193-blip/tracking-server/internal/domain/errors"
	"github.com/6631501193-blip/tracking-server/internal/domain/model"
	"github.com/6631501193-blip/tracking-server/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on, kept as an
// interface so tests can substitute a mock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type expenseRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Expenses() repository.ExpenseRepository {
	return &expenseRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            name TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS expenses (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            description TEXT NOT NULL,
            amount NUMERIC(10,2) NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_user ON expenses(user_id, created_at DESC, id DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// Seed inserts demo users with their sample expenses unless any of the
// accounts already exists. The whole seed set is written in one transaction.
func (s *Storage) Seed(ctx context.Context, users []model.SeedUser) error {
	if len(users) == 0 {
		return nil
	}

	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Name)
	}

	return s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const existsQuery = `SELECT COUNT(*) FROM users WHERE name = ANY($1)`
		var count int64
		if err := tx.QueryRow(ctx, existsQuery, names).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		const insertUser = `INSERT INTO users (name, password_hash) VALUES ($1, $2) RETURNING id`
		const insertExpense = `INSERT INTO expenses (user_id, description, amount, created_at) VALUES ($1, $2, $3, $4)`

		for _, u := range users {
			var userID int64
			if err := tx.QueryRow(ctx, insertUser, u.Name, u.PasswordHash).Scan(&userID); err != nil {
				return err
			}
			for _, e := range u.Expenses {
				if _, err := tx.Exec(ctx, insertExpense, userID, e.Description, e.Amount, e.CreatedAt); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, name, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (name, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, name, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Name = name
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByName(ctx context.Context, name string) (*model.User, error) {
	const query = `SELECT id, name, password_hash, created_at FROM users WHERE name=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, name).Scan(&u.ID, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, name, password_hash, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- ExpenseRepository implementation ---

func (r *expenseRepository) Create(ctx context.Context, userID int64, description string, amount float64, createdAt *time.Time) (*model.Expense, error) {
	e := model.Expense{UserID: userID, Description: description}

	var err error
	if createdAt != nil {
		const query = `INSERT INTO expenses (user_id, description, amount, created_at)
                       VALUES ($1, $2, $3, $4) RETURNING id, amount, created_at`
		err = r.storage.pool.QueryRow(ctx, query, userID, description, amount, *createdAt).Scan(&e.ID, &e.Amount, &e.CreatedAt)
	} else {
		const query = `INSERT INTO expenses (user_id, description, amount)
                       VALUES ($1, $2, $3) RETURNING id, amount, created_at`
		err = r.storage.pool.QueryRow(ctx, query, userID, description, amount).Scan(&e.ID, &e.Amount, &e.CreatedAt)
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Listing order is fixed: newest first, ties broken by descending id so the
// result stays deterministic at whole-second timestamp granularity.
const listColumns = `id, user_id, description, amount, created_at`

func (r *expenseRepository) ListByUser(ctx context.Context, userID int64) ([]model.Expense, error) {
	const query = `SELECT ` + listColumns + `
                   FROM expenses WHERE user_id=$1 ORDER BY created_at DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectExpenses(rows)
}

func (r *expenseRepository) ListToday(ctx context.Context, userID int64) ([]model.Expense, error) {
	const query = `SELECT ` + listColumns + `
                   FROM expenses WHERE user_id=$1 AND created_at::date = CURRENT_DATE
                   ORDER BY created_at DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectExpenses(rows)
}

func (r *expenseRepository) Search(ctx context.Context, userID int64, keyword string) ([]model.Expense, error) {
	const query = `SELECT ` + listColumns + `
                   FROM expenses WHERE user_id=$1 AND description ILIKE '%' || $2 || '%'
                   ORDER BY created_at DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID, keyword)
	if err != nil {
		return nil, err
	}
	return collectExpenses(rows)
}

func (r *expenseRepository) Update(ctx context.Context, id, userID int64, description string, amount float64) (*model.Expense, error) {
	const query = `UPDATE expenses SET description=$1, amount=$2
                   WHERE id=$3 AND user_id=$4
                   RETURNING id, user_id, description, amount, created_at`
	var e model.Expense
	err := r.storage.pool.QueryRow(ctx, query, description, amount, id, userID).Scan(&e.ID, &e.UserID, &e.Description, &e.Amount, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *expenseRepository) Delete(ctx context.Context, id, userID int64) error {
	const query = `DELETE FROM expenses WHERE id=$1 AND user_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func collectExpenses(rows pgx.Rows) ([]model.Expense, error) {
	defer rows.Close()

	var result []model.Expense
	for rows.Next() {
		var e model.Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Amount, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
