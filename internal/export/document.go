package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"gastos/internal/core"
)

var columnWidths = []float64{40, 35, 30, 30, 30, 30}

// Truncation keeps a row on one line at the column widths above.
const (
	maxDescriptionRunes = 40
	maxCategoryRunes    = 30
)

// RenderDocument builds an A4 PDF with a title line and a bordered table.
// Pages break automatically with a 15mm bottom margin.
func RenderDocument(rows []core.ComparisonRow) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(Title, true)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, tr(Title), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 10)
	for i, h := range Headers {
		pdf.CellFormat(columnWidths[i], 10, tr(h), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, r := range rows {
		for i, cell := range documentCells(r) {
			pdf.CellFormat(columnWidths[i], 10, tr(cell), "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// documentCells renders one table row of the document.
func documentCells(r core.ComparisonRow) []string {
	return []string{
		truncate(r.Description, maxDescriptionRunes),
		core.FormatAmount(r.Budgeted),
		core.FormatAmount(r.Actual),
		truncate(r.Category, maxCategoryRunes),
		r.Date.String(),
		core.FormatAmount(r.Difference),
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
