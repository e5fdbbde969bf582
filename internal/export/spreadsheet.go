package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"gastos/internal/core"
)

// builtin number format "0.00"
const twoDecimals = 2

// RenderSpreadsheet builds an xlsx workbook with a single sheet named Title.
// Amounts are stored as numbers rounded with core.RoundAmount, the same rule
// the document uses, so both reports show the same figures.
func RenderSpreadsheet(rows []core.ComparisonRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), Title); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	header := make([]any, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(Title, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, r := range rows {
		line := i + 2
		cells := []struct {
			col   string
			value any
		}{
			{"A", r.Description},
			{"B", r.Budgeted},
			{"C", r.Actual},
			{"D", r.Category},
			{"E", r.Date.String()},
			{"F", r.Difference},
		}
		for _, c := range cells {
			axis := fmt.Sprintf("%s%d", c.col, line)
			var err error
			if v, ok := c.value.(float64); ok {
				err = f.SetCellFloat(Title, axis, core.RoundAmount(v), -1, 64)
			} else {
				err = f.SetCellStr(Title, axis, c.value.(string))
			}
			if err != nil {
				return nil, fmt.Errorf("write %s: %w", axis, err)
			}
		}
	}

	if len(rows) > 0 {
		style, err := f.NewStyle(&excelize.Style{NumFmt: twoDecimals})
		if err != nil {
			return nil, fmt.Errorf("amount style: %w", err)
		}
		last := len(rows) + 1
		for _, col := range []string{"B", "C", "F"} {
			if err := f.SetCellStyle(Title, fmt.Sprintf("%s2", col), fmt.Sprintf("%s%d", col, last), style); err != nil {
				return nil, fmt.Errorf("style column %s: %w", col, err)
			}
		}
	}

	if err := f.SetColWidth(Title, "A", "A", 40); err != nil {
		return nil, fmt.Errorf("column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
