// Package ledger defines the storage port for expense records.
package ledger

import (
	"context"

	"gastos/internal/core"
)

// Ledger is the persistent collection of expense records.
//
// Every mutation is committed before it returns. Missing ids are reported
// with core.ErrNotFound and storage failures with a *core.PersistenceError.
// Insert and Update reject an expense that fails core.Expense.Validate with
// its *core.FieldError before anything is written.
type Ledger interface {
	// Insert persists e (its ID is ignored) and returns the assigned id.
	Insert(ctx context.Context, e core.Expense) (int64, error)

	// GetAll returns every record in storage order.
	GetAll(ctx context.Context) ([]core.Expense, error)

	GetByID(ctx context.Context, id int64) (core.Expense, error)

	// Update replaces every mutable field of the record identified by id.
	Update(ctx context.Context, id int64, e core.Expense) error

	Delete(ctx context.Context, id int64) error
}

// Initializer is implemented by ledgers that need their schema prepared.
// Initialize must be idempotent.
type Initializer interface {
	Initialize(ctx context.Context) error
}

// Closer is implemented by ledgers holding external resources.
type Closer interface {
	Close() error
}

// CategorySummer is implemented by ledgers that can total actual amounts per
// category for an inclusive date range without returning every record.
type CategorySummer interface {
	SumActualByCategory(ctx context.Context, r core.DateRange) (map[string]float64, error)
}
