package main

import (
	"context"
	"errors"
	"os"
	"time"

	"gastos/internal/amqp"
	"gastos/internal/cli"
	"gastos/internal/log"
	gsheet "gastos/internal/sheets/google"
	"gastos/internal/worker"
)

const (
	shutdownTimeout = 15 * time.Second
	consumeRetry    = 5 * time.Second
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(log.ComponentWorker)
	logger.Info("Starting gastos-worker")

	if err := run(logger); err != nil {
		logger.Error("Worker failed", log.FieldErrorType, log.ErrorType(err), log.FieldError, err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		return err
	}

	// The worker only reads the ledger; it never publishes changes itself.
	ledgerCfg := *cfg
	ledgerCfg.AMQPURL = ""
	res, err := cli.InitLedger(context.Background(), logger, &ledgerCfg)
	if err != nil {
		return err
	}

	var sheet worker.SheetWriter
	sheetsCfg := gsheet.Config{
		SpreadsheetID:   cfg.GoogleSpreadsheetID,
		SheetName:       cfg.GoogleSheetName,
		CredentialsJSON: cfg.GoogleServiceAccountJSON,
		CredentialsFile: cfg.GoogleServiceAccountFile,
	}
	if sheetsCfg.Enabled() {
		client, err := gsheet.NewClient(context.Background(), sheetsCfg, logger)
		if err != nil {
			res.Cleanup()
			return err
		}
		sheet = client
	} else {
		logger.Info("Google Sheets disabled - no GOOGLE_SPREADSHEET_ID provided")
	}

	var consumer *amqp.Client
	if cfg.AMQPURL != "" {
		consumer, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, logger)
		if err != nil {
			res.Cleanup()
			return err
		}
	} else {
		logger.Info("AMQP disabled - reports refresh on schedule only")
	}

	w := worker.NewReportWorker(res.Service, cfg.ExportPaths(), sheet, logger)
	scheduler, err := w.Schedule(cfg.RefreshSchedule)
	if err != nil {
		res.Cleanup()
		return err
	}

	ctx, done := cli.GracefulShutdown(logger, shutdownTimeout, func() {
		<-scheduler.Stop().Done()
		if consumer != nil {
			consumer.Close()
		}
		if err := res.Cleanup(); err != nil {
			logger.Error("Cleanup failed", log.FieldError, err)
		}
	})

	// Startup refresh so reports exist before the first change or tick.
	if err := w.Refresh(ctx); err != nil {
		logger.Warn("Startup refresh failed", log.FieldError, err)
	}

	scheduler.Start()
	logger.Info("Refresh scheduled", "schedule", cfg.RefreshSchedule)

	if consumer != nil {
		go consume(ctx, logger, consumer, w)
	}

	cli.WaitForShutdown(ctx, done)
	return nil
}

func consume(ctx context.Context, logger *log.Logger, consumer *amqp.Client, w *worker.ReportWorker) {
	for {
		err := consumer.Consume(ctx, w.HandleLedgerChanged)
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			return
		}
		logger.Error("Message consumption stopped, retrying", log.FieldError, err, "retry_in", consumeRetry)
		select {
		case <-ctx.Done():
			return
		case <-time.After(consumeRetry):
		}
	}
}
