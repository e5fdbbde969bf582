package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"gastos/internal/core"
	"gastos/internal/export"
	"gastos/internal/report"
	"gastos/internal/services"
)

var errUsage = errors.New("usage")

func (a *app) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "add":
		return a.add(ctx, args)
	case "edit":
		return a.edit(ctx, args)
	case "delete":
		return a.delete(ctx, args)
	case "show":
		return a.show(ctx, args)
	case "list":
		return a.list(ctx, args)
	case "summary":
		return a.summary(ctx, args)
	case "compare":
		return a.compare(ctx, args)
	case "export":
		return a.export(ctx, args)
	case "categories":
		return a.categories(args)
	default:
		return errUsage
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// entryFlags binds the form fields of add and edit.
type entryFlags struct {
	in core.Input
}

func (f *entryFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.in.Description, "desc", "", "description")
	fs.StringVar(&f.in.Budgeted, "budgeted", "", "budgeted amount")
	fs.StringVar(&f.in.Actual, "actual", "", "actual amount")
	fs.StringVar(&f.in.Category, "category", "", "category id or label, or Other")
	fs.StringVar(&f.in.OtherCategory, "other", "", "free-text category when -category=Other")
	fs.StringVar(&f.in.Date, "date", "", "date as YYYY-MM-DD")
}

// overlay copies every flag given on the command line onto in.
func (f *entryFlags) overlay(fs *flag.FlagSet, in core.Input) core.Input {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "desc":
			in.Description = f.in.Description
		case "budgeted":
			in.Budgeted = f.in.Budgeted
		case "actual":
			in.Actual = f.in.Actual
		case "category":
			in.Category = f.in.Category
			if !otherSelected(f.in.Category) {
				in.OtherCategory = ""
			}
		case "other":
			in.OtherCategory = f.in.OtherCategory
		case "date":
			in.Date = f.in.Date
		}
	})
	return in
}

func otherSelected(category string) bool {
	c, ok := core.LookupCategory(category)
	return ok && c == core.CategoryOther
}

func (a *app) add(ctx context.Context, args []string) error {
	var f entryFlags
	fs := newFlagSet("add")
	f.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if f.in.Date == "" {
		f.in.Date = time.Now().Format(core.DateLayout)
	}

	id, err := services.NewEntryForm(a.svc).Submit(ctx, f.in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "recorded expense %d\n", id)
	return nil
}

func (a *app) edit(ctx context.Context, args []string) error {
	var f entryFlags
	var id int64
	fs := newFlagSet("edit")
	fs.Int64Var(&id, "id", 0, "expense id")
	f.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if id <= 0 {
		return errors.New("edit needs -id")
	}

	form := services.NewEntryForm(a.svc)
	current, err := form.BeginEdit(ctx, id)
	if err != nil {
		return err
	}
	if _, err := form.Submit(ctx, f.overlay(fs, current)); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "updated expense %d\n", id)
	return nil
}

func (a *app) delete(ctx context.Context, args []string) error {
	var id int64
	var yes bool
	fs := newFlagSet("delete")
	fs.Int64Var(&id, "id", 0, "expense id")
	fs.BoolVar(&yes, "yes", false, "confirm the deletion")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if id <= 0 {
		return errors.New("delete needs -id")
	}
	if !yes {
		return fmt.Errorf("refusing to delete expense %d without -yes", id)
	}

	if err := a.svc.Remove(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "deleted expense %d\n", id)
	return nil
}

func (a *app) show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("show needs an expense id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid expense id %q", args[0])
	}

	e, err := a.svc.Get(ctx, id)
	if err != nil {
		return err
	}
	a.printExpense(e)
	return nil
}

func (a *app) list(ctx context.Context, _ []string) error {
	all, err := a.svc.List(ctx)
	if err != nil {
		return err
	}
	a.printExpenses(all)
	return nil
}

func (a *app) summary(ctx context.Context, args []string) error {
	def := services.DefaultRange(time.Now())
	var from, to string
	fs := newFlagSet("summary")
	fs.StringVar(&from, "from", def.Start.String(), "first day, YYYY-MM-DD")
	fs.StringVar(&to, "to", def.End.String(), "last day, YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var r core.DateRange
	var err error
	if r.Start, err = core.ParseDate(from); err != nil {
		return &core.FieldError{Field: "start_date", Err: err}
	}
	if r.End, err = core.ParseDate(to); err != nil {
		return &core.FieldError{Field: "end_date", Err: err}
	}

	totals, err := a.svc.SumByCategory(ctx, r)
	if err != nil {
		return err
	}
	a.printSummary(r, report.SortedTotals(totals))
	return nil
}

func (a *app) compare(ctx context.Context, _ []string) error {
	rows, err := a.svc.CompareAll(ctx)
	if err != nil {
		return err
	}
	a.printComparison(rows)
	return nil
}

func (a *app) export(ctx context.Context, args []string) error {
	var format, dir string
	fs := newFlagSet("export")
	fs.StringVar(&format, "format", "all", "xlsx, pdf or all")
	fs.StringVar(&dir, "dir", "", "output directory (default EXPORT_DIR)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	paths := a.cfg.ExportPaths()
	if dir != "" {
		cfg := *a.cfg
		cfg.ExportDir = dir
		paths = cfg.ExportPaths()
	}

	rows, err := a.svc.CompareAll(ctx)
	if err != nil {
		return err
	}

	if format == "all" {
		if err := export.ExportAll(ctx, rows, paths); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "wrote %s\nwrote %s\n", paths.Spreadsheet, paths.Document)
		return nil
	}

	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	path := paths.Spreadsheet
	if f == export.Document {
		path = paths.Document
	}
	if err := export.Export(rows, f, path); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "wrote %s\n", path)
	return nil
}

func (a *app) categories(_ []string) error {
	for _, c := range core.FixedCategories {
		fmt.Fprintf(a.out, "%-16s %s\n", c, c.Label())
	}
	fmt.Fprintf(a.out, "%-16s %s (use -other for the name)\n", core.CategoryOther, core.CategoryOther.Label())
	return nil
}
