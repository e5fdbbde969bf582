package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"gastos/internal/cli"
	"gastos/internal/config"
	"gastos/internal/core"
	"gastos/internal/log"
	"gastos/internal/services"
	"gastos/internal/storage"
)

const usage = `usage: gastos <command> [flags]

commands:
  add         record an expense
  edit        change an expense (unset flags keep their value)
  delete      delete an expense (requires -yes)
  show        print one expense
  list        print every expense
  summary     actual spending per category in a date range
  compare     budget vs actual for every expense
  export      write the spreadsheet and/or PDF report
  categories  list the predefined categories
  migrate     create or upgrade the database schema
`

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(log.ComponentCLI)
	os.Exit(run(context.Background(), logger, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, logger *log.Logger, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "help" {
		fmt.Fprint(stderr, usage)
		return 2
	}

	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if args[0] == "migrate" {
		if err := storage.RunMigrations(cfg.SQLiteDBPath); err != nil {
			fmt.Fprintln(stderr, describe(err))
			return 1
		}
		fmt.Fprintf(stdout, "schema up to date: %s\n", cfg.SQLiteDBPath)
		return 0
	}

	res, err := cli.InitLedger(ctx, logger, cfg)
	if err != nil {
		fmt.Fprintln(stderr, describe(err))
		return 1
	}
	defer func() {
		if err := res.Cleanup(); err != nil {
			logger.Error("Cleanup failed", log.FieldError, err)
		}
	}()

	a := newApp(res.Service, cfg, stdout)
	if err := a.dispatch(ctx, args[0], args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(stderr, usage)
			return 2
		}
		fmt.Fprintln(stderr, describe(err))
		return 1
	}
	return 0
}

type app struct {
	svc *services.LedgerService
	cfg *config.Config
	out io.Writer
	p   *message.Printer
}

func newApp(svc *services.LedgerService, cfg *config.Config, out io.Writer) *app {
	return &app{
		svc: svc,
		cfg: cfg,
		out: out,
		p:   message.NewPrinter(language.Make(cfg.Locale)),
	}
}

// describe turns an error into the one-line message shown to the user.
func describe(err error) string {
	var fe *core.FieldError
	switch {
	case errors.As(err, &fe):
		return fmt.Sprintf("invalid %s: %v", fe.Field, fe.Err)
	case errors.Is(err, core.ErrNotFound):
		return "expense not found"
	case errors.Is(err, core.ErrInvalidRange):
		return "start date is after end date"
	case errors.Is(err, core.ErrPersistence):
		return fmt.Sprintf("storage error: %v", err)
	default:
		return err.Error()
	}
}
