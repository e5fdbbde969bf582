package services

import (
	"context"
	"fmt"
	"time"

	"gastos/internal/core"
	"gastos/internal/ledger"
	"gastos/internal/log"
	"gastos/internal/report"
)

// Notifier is told about every committed ledger mutation.
type Notifier interface {
	PublishLedgerChanged(ctx context.Context, op string, id int64) error
}

// LedgerService validates input, applies it to the ledger and derives the
// report views. Publishing a change notification never fails a mutation.
type LedgerService struct {
	ledger   ledger.Ledger
	notifier Notifier
	logger   *log.Logger
}

// NewLedgerService wires a ledger and an optional notifier (nil disables it).
func NewLedgerService(l ledger.Ledger, notifier Notifier, logger *log.Logger) *LedgerService {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &LedgerService{
		ledger:   l,
		notifier: notifier,
		logger:   logger.WithComponent(log.ComponentLedger),
	}
}

// Record validates in and inserts it, returning the new id.
func (s *LedgerService) Record(ctx context.Context, in core.Input) (int64, error) {
	e, err := core.Validate(in)
	if err != nil {
		s.logger.DebugContext(ctx, "Rejected expense input", log.FieldOperation, log.OpValidate, log.FieldError, err)
		return 0, err
	}

	id, err := s.ledger.Insert(ctx, e)
	if err != nil {
		s.logger.Failure(ctx, "Failed to record expense", log.OpInsert, err)
		return 0, fmt.Errorf("record expense: %w", err)
	}

	e.ID = id
	s.logger.InfoContext(ctx, "Expense recorded", log.NewFields().WithExpense(e).ToSlice()...)
	s.publish(ctx, log.OpInsert, id)
	return id, nil
}

// Amend validates in and replaces every field of expense id with it.
func (s *LedgerService) Amend(ctx context.Context, id int64, in core.Input) error {
	e, err := core.Validate(in)
	if err != nil {
		return err
	}

	if err := s.ledger.Update(ctx, id, e); err != nil {
		s.logger.Failure(ctx, "Failed to amend expense", log.OpUpdate, err)
		return fmt.Errorf("amend expense %d: %w", id, err)
	}

	e.ID = id
	s.logger.InfoContext(ctx, "Expense amended", log.NewFields().WithExpense(e).ToSlice()...)
	s.publish(ctx, log.OpUpdate, id)
	return nil
}

// Remove deletes expense id. Callers confirm with the user beforehand.
func (s *LedgerService) Remove(ctx context.Context, id int64) error {
	if err := s.ledger.Delete(ctx, id); err != nil {
		s.logger.Failure(ctx, "Failed to remove expense", log.OpDelete, err)
		return fmt.Errorf("remove expense %d: %w", id, err)
	}

	s.logger.InfoContext(ctx, "Expense removed", log.FieldExpenseID, id)
	s.publish(ctx, log.OpDelete, id)
	return nil
}

func (s *LedgerService) Get(ctx context.Context, id int64) (core.Expense, error) {
	e, err := s.ledger.GetByID(ctx, id)
	if err != nil {
		return core.Expense{}, fmt.Errorf("get expense %d: %w", id, err)
	}
	return e, nil
}

func (s *LedgerService) List(ctx context.Context) ([]core.Expense, error) {
	all, err := s.ledger.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return all, nil
}

// SumByCategory totals actual amounts per category within r, bounds included.
func (s *LedgerService) SumByCategory(ctx context.Context, r core.DateRange) (map[string]float64, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	if summer, ok := s.ledger.(ledger.CategorySummer); ok {
		totals, err := summer.SumActualByCategory(ctx, r)
		if err != nil {
			return nil, fmt.Errorf("sum by category: %w", err)
		}
		return totals, nil
	}

	all, err := s.ledger.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum by category: %w", err)
	}
	totals := report.SumByCategory(all, r)
	s.logger.DebugContext(ctx, "Category totals computed",
		append(log.NewFields().WithRange(r).ToSlice(), log.FieldRows, len(totals))...)
	return totals, nil
}

// CompareAll returns the budget-vs-actual row of every expense in ledger order.
func (s *LedgerService) CompareAll(ctx context.Context) ([]core.ComparisonRow, error) {
	all, err := s.ledger.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("compare all: %w", err)
	}
	return report.CompareAll(all), nil
}

// DefaultRange is the range the breakdown starts with: one month back to today.
func DefaultRange(now time.Time) core.DateRange {
	today := core.NewDate(now.Year(), int(now.Month()), now.Day())
	return core.DateRange{
		Start: core.Date{Time: today.AddDate(0, -1, 0)},
		End:   today,
	}
}

// Close releases the ledger if it holds resources.
func (s *LedgerService) Close() error {
	if c, ok := s.ledger.(ledger.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("close ledger: %w", err)
		}
	}
	return nil
}

func (s *LedgerService) publish(ctx context.Context, op string, id int64) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.PublishLedgerChanged(ctx, op, id); err != nil {
		// The mutation is committed; consumers catch up on their next scheduled refresh.
		s.logger.WarnContext(ctx, "Failed to publish ledger change",
			log.FieldOperation, op, log.FieldExpenseID, id, log.FieldError, err)
	}
}
