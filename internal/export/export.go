// Package export renders the budget-vs-actual comparison into the
// spreadsheet and document reports and writes them to disk.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"gastos/internal/core"
)

// Format selects the report kind.
type Format string

const (
	Spreadsheet Format = "xlsx"
	Document    Format = "pdf"
)

// Title is the sheet name and document heading.
const Title = "Historial de Gastos"

// Default output file names.
const (
	DefaultSpreadsheetName = "historial_gastos.xlsx"
	DefaultDocumentName    = "historial_gastos.pdf"
)

// Headers are the column titles of both reports, in column order.
var Headers = []string{"Description", "BudgetedAmount", "ActualAmount", "Category", "Date", "Difference"}

// ParseFormat accepts "xlsx"/"spreadsheet" and "pdf"/"document".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "xlsx", "spreadsheet":
		return Spreadsheet, nil
	case "pdf", "document":
		return Document, nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

// Render produces the report bytes for rows. An empty rows slice yields a
// report with headers only.
func Render(rows []core.ComparisonRow, format Format) ([]byte, error) {
	switch format {
	case Spreadsheet:
		return RenderSpreadsheet(rows)
	case Document:
		return RenderDocument(rows)
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

// WriteFile replaces path with data. The bytes land in a temporary file in
// the same directory first, so a failed write leaves any previous report intact.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// Export renders rows in format and writes them to path.
func Export(rows []core.ComparisonRow, format Format, path string) error {
	data, err := Render(rows, format)
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	return WriteFile(path, data)
}

// Paths names the two report files.
type Paths struct {
	Spreadsheet string
	Document    string
}

// DefaultPaths places both reports under dir with their default names.
func DefaultPaths(dir string) Paths {
	return Paths{
		Spreadsheet: filepath.Join(dir, DefaultSpreadsheetName),
		Document:    filepath.Join(dir, DefaultDocumentName),
	}
}

// ExportAll writes both reports concurrently. Either failure is returned and
// the other report may still have been written.
func ExportAll(ctx context.Context, rows []core.ComparisonRow, paths Paths) error {
	g, ctx := errgroup.WithContext(ctx)
	for format, path := range map[Format]string{Spreadsheet: paths.Spreadsheet, Document: paths.Document} {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return Export(rows, format, path)
		})
	}
	return g.Wait()
}
