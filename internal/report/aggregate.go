// Package report derives the category breakdown and budget-vs-actual views
// from ledger contents. Nothing here is cached or persisted.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"gastos/internal/core"
)

// SumByCategory totals the actual amount per category for expenses dated
// inside r (bounds included). Categories without matching expenses are
// omitted; no match at all yields an empty, non-nil map.
func SumByCategory(expenses []core.Expense, r core.DateRange) map[string]float64 {
	sums := map[string]decimal.Decimal{}
	for _, e := range expenses {
		if !r.Contains(e.Date) {
			continue
		}
		c := core.NormalizeCategory(e.Category)
		sums[c] = sums[c].Add(decimal.NewFromFloat(e.Actual))
	}

	out := make(map[string]float64, len(sums))
	for c, d := range sums {
		out[c] = d.InexactFloat64()
	}
	return out
}

// CompareAll returns one comparison row per expense, in the given order.
func CompareAll(expenses []core.Expense) []core.ComparisonRow {
	rows := make([]core.ComparisonRow, len(expenses))
	for i, e := range expenses {
		rows[i] = e.Compare()
	}
	return rows
}

// SortedTotals turns a category map into a slice ordered by descending total,
// then by category name.
func SortedTotals(totals map[string]float64) []core.CategoryTotal {
	out := make([]core.CategoryTotal, 0, len(totals))
	for c, v := range totals {
		out = append(out, core.CategoryTotal{Category: c, Total: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// Totals sums the budgeted, actual and difference columns of rows.
func Totals(rows []core.ComparisonRow) core.ComparisonTotals {
	var b, a, d decimal.Decimal
	for _, r := range rows {
		b = b.Add(decimal.NewFromFloat(r.Budgeted))
		a = a.Add(decimal.NewFromFloat(r.Actual))
		d = d.Add(decimal.NewFromFloat(r.Difference))
	}
	return core.ComparisonTotals{
		Budgeted:   b.InexactFloat64(),
		Actual:     a.InexactFloat64(),
		Difference: d.InexactFloat64(),
	}
}

// Shares returns each category's fraction of the grand total, as used for
// the breakdown chart. An all-zero total yields zero shares.
func Shares(totals []core.CategoryTotal) []float64 {
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(decimal.NewFromFloat(t.Total))
	}
	out := make([]float64, len(totals))
	if sum.IsZero() {
		return out
	}
	for i, t := range totals {
		out[i] = decimal.NewFromFloat(t.Total).Div(sum).InexactFloat64()
	}
	return out
}
