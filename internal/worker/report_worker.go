package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"gastos/internal/amqp"
	"gastos/internal/core"
	"gastos/internal/export"
	"gastos/internal/log"
)

// refreshTimeout bounds a scheduled refresh.
const refreshTimeout = 2 * time.Minute

// ComparisonSource yields the current budget-vs-actual rows.
type ComparisonSource interface {
	CompareAll(ctx context.Context) ([]core.ComparisonRow, error)
}

// SheetWriter mirrors the rows into an external spreadsheet.
type SheetWriter interface {
	WriteComparison(ctx context.Context, rows []core.ComparisonRow) error
}

// ReportWorker regenerates the exported reports whenever the ledger changes
// and on a fixed schedule. Refreshes never overlap.
type ReportWorker struct {
	source ComparisonSource
	paths  export.Paths
	sheet  SheetWriter
	logger *log.Logger

	mu sync.Mutex
}

// NewReportWorker builds a worker. sheet may be nil.
func NewReportWorker(source ComparisonSource, paths export.Paths, sheet SheetWriter, logger *log.Logger) *ReportWorker {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &ReportWorker{
		source: source,
		paths:  paths,
		sheet:  sheet,
		logger: logger.WithComponent(log.ComponentWorker),
	}
}

// HandleLedgerChanged processes a single ledger change message from AMQP.
// The message only triggers a refresh; its id is kept for the log.
func (w *ReportWorker) HandleLedgerChanged(ctx context.Context, msg *amqp.LedgerChangedMessage) error {
	w.logger.InfoContext(ctx, "Processing ledger change",
		log.FieldMessageID, msg.MessageID,
		log.FieldOperation, msg.Operation,
		log.FieldExpenseID, msg.ExpenseID)

	if err := w.Refresh(ctx); err != nil {
		return fmt.Errorf("refresh after %s %d: %w", msg.Operation, msg.ExpenseID, err)
	}
	return nil
}

// Refresh re-reads the ledger and rewrites every configured report.
func (w *ReportWorker) Refresh(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	start := time.Now()
	rows, err := w.source.CompareAll(ctx)
	if err != nil {
		w.logger.Failure(ctx, "Failed to read ledger", log.OpCompare, err)
		return err
	}

	if err := export.ExportAll(ctx, rows, w.paths); err != nil {
		w.logger.Failure(ctx, "Failed to export reports", log.OpExport, err)
		return fmt.Errorf("export reports: %w", err)
	}

	if w.sheet != nil {
		if err := w.sheet.WriteComparison(ctx, rows); err != nil {
			w.logger.Failure(ctx, "Failed to update sheet", log.OpExport, err)
			return fmt.Errorf("update sheet: %w", err)
		}
	}

	w.logger.InfoContext(ctx, "Reports refreshed",
		log.FieldOperation, log.OpRefresh,
		log.FieldRows, len(rows),
		"duration", time.Since(start))
	return nil
}

// Schedule registers a periodic refresh under spec (standard cron syntax or
// a descriptor such as "@every 1h"). The caller starts and stops the scheduler.
func (w *ReportWorker) Schedule(spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		if err := w.Refresh(ctx); err != nil {
			w.logger.Warn("Scheduled refresh failed", log.FieldError, err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule %q: %w", spec, err)
	}
	return c, nil
}
