package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"gastos/internal/core"
	"gastos/internal/ledger"

	_ "modernc.org/sqlite"
)

var (
	_ ledger.Ledger         = (*SQLiteRepository)(nil)
	_ ledger.Initializer    = (*SQLiteRepository)(nil)
	_ ledger.CategorySummer = (*SQLiteRepository)(nil)
)

// SQLiteRepository stores the ledger in the single-table gastos schema.
type SQLiteRepository struct {
	db      *sql.DB
	path    string
	queries *Queries
	logger  *slog.Logger
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &core.PersistenceError{Op: "create db directory", Err: err}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, &core.PersistenceError{Op: "open sqlite database", Err: err}
	}
	// Single writer, single connection: every statement sees the last commit.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &core.PersistenceError{Op: "ping database", Err: err}
	}

	repo := &SQLiteRepository{
		db:      db,
		path:    dbPath,
		queries: New(db),
		logger:  slog.Default().With("component", "storage"),
	}

	if err := repo.Initialize(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	return repo, nil
}

// Initialize makes sure the gastos table exists. Safe to call on every start.
func (r *SQLiteRepository) Initialize(ctx context.Context) error {
	if err := RunMigrations(r.path); err != nil {
		return &core.PersistenceError{Op: "initialize", Err: err}
	}
	r.logger.DebugContext(ctx, "Ledger schema ready", "path", r.path)
	return nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Insert implements ledger.Ledger
func (r *SQLiteRepository) Insert(ctx context.Context, e core.Expense) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}

	var id int64
	err := r.inTx(ctx, "insert", func(q *Queries) error {
		var err error
		id, err = q.CreateGasto(ctx, CreateGastoParams{
			Montopresupuestado: e.Budgeted,
			Descripcion:        e.Description,
			Montoreal:          e.Actual,
			Categoria:          e.Category,
			Fecha:              e.Date.String(),
		})
		return err
	})
	if err != nil {
		return 0, err
	}

	r.logger.InfoContext(ctx, "Expense saved",
		"expense_id", id,
		"description", e.Description,
		"category", e.Category,
		"date", e.Date.String())

	return id, nil
}

// GetAll implements ledger.Ledger
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.queries.ListGastos(ctx)
	if err != nil {
		return nil, &core.PersistenceError{Op: "list expenses", Err: err}
	}

	expenses := make([]core.Expense, 0, len(rows))
	for _, g := range rows {
		e, err := toExpense(g)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

// GetByID implements ledger.Ledger
func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (core.Expense, error) {
	g, err := r.queries.GetGasto(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Expense{}, fmt.Errorf("get expense %d: %w", id, core.ErrNotFound)
	}
	if err != nil {
		return core.Expense{}, &core.PersistenceError{Op: "get expense", Err: err}
	}
	return toExpense(g)
}

// Update implements ledger.Ledger
func (r *SQLiteRepository) Update(ctx context.Context, id int64, e core.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}

	err := r.inTx(ctx, "update", func(q *Queries) error {
		n, err := q.UpdateGasto(ctx, UpdateGastoParams{
			Montopresupuestado: e.Budgeted,
			Descripcion:        e.Description,
			Montoreal:          e.Actual,
			Categoria:          e.Category,
			Fecha:              e.Date.String(),
			Gastosid:           id,
		})
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("update expense %d: %w", id, core.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "Expense updated", "expense_id", id, "category", e.Category)
	return nil
}

// Delete implements ledger.Ledger
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	err := r.inTx(ctx, "delete", func(q *Queries) error {
		n, err := q.DeleteGasto(ctx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("delete expense %d: %w", id, core.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "Expense deleted", "expense_id", id)
	return nil
}

// SumActualByCategory implements ledger.CategorySummer. SQLite only filters
// the range; amounts are added in decimal so totals match report.SumByCategory.
func (r *SQLiteRepository) SumActualByCategory(ctx context.Context, rng core.DateRange) (map[string]float64, error) {
	rows, err := r.queries.ListActualInRange(ctx, rng.Start.String(), rng.End.String())
	if err != nil {
		return nil, &core.PersistenceError{Op: "sum by category", Err: err}
	}
	sums := make(map[string]decimal.Decimal)
	for _, row := range rows {
		c := core.NormalizeCategory(row.Categoria)
		sums[c] = sums[c].Add(decimal.NewFromFloat(row.Montoreal))
	}
	totals := make(map[string]float64, len(sums))
	for c, d := range sums {
		totals[c] = d.InexactFloat64()
	}
	return totals, nil
}

// inTx runs fn in its own transaction and commits before returning.
// Not-found results roll back and pass through unchanged; anything else
// becomes a *core.PersistenceError.
func (r *SQLiteRepository) inTx(ctx context.Context, op string, fn func(q *Queries) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &core.PersistenceError{Op: op, Err: err}
	}
	defer tx.Rollback()

	if err := fn(r.queries.WithTx(tx)); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return err
		}
		r.logger.ErrorContext(ctx, "Ledger write failed", "operation", op, "error", err)
		return &core.PersistenceError{Op: op, Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &core.PersistenceError{Op: op + " commit", Err: err}
	}
	return nil
}

func toExpense(g Gasto) (core.Expense, error) {
	date, err := core.ParseDate(g.Fecha)
	if err != nil {
		return core.Expense{}, &core.PersistenceError{
			Op:  "decode expense",
			Err: fmt.Errorf("row %d has date %q: %w", g.Gastosid, g.Fecha, err),
		}
	}
	return core.Expense{
		ID:          g.Gastosid,
		Description: g.Descripcion,
		Budgeted:    g.Montopresupuestado,
		Actual:      g.Montoreal,
		Category:    core.NormalizeCategory(g.Categoria),
		Date:        date,
	}, nil
}
