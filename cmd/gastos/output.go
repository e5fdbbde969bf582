package main

import (
	"strconv"
	"text/tabwriter"

	"gastos/internal/core"
	"gastos/internal/report"
)

func (a *app) amount(v float64) string {
	return a.p.Sprintf("%.2f", core.RoundAmount(v))
}

func (a *app) printExpense(e core.Expense) {
	a.p.Fprintf(a.out, "id:          %s\n", strconv.FormatInt(e.ID, 10))
	a.p.Fprintf(a.out, "description: %s\n", e.Description)
	a.p.Fprintf(a.out, "budgeted:    %s\n", a.amount(e.Budgeted))
	a.p.Fprintf(a.out, "actual:      %s\n", a.amount(e.Actual))
	a.p.Fprintf(a.out, "category:    %s\n", core.Category(e.Category).Label())
	a.p.Fprintf(a.out, "date:        %s\n", e.Date)
}

func (a *app) printExpenses(all []core.Expense) {
	if len(all) == 0 {
		a.p.Fprintln(a.out, "no expenses recorded")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	a.p.Fprintln(tw, "ID\tDate\tBudgeted\tActual\tCategory\tDescription\t")
	for _, e := range all {
		a.p.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			strconv.FormatInt(e.ID, 10), e.Date, a.amount(e.Budgeted), a.amount(e.Actual),
			core.Category(e.Category).Label(), e.Description)
	}
	tw.Flush()
}

func (a *app) printSummary(r core.DateRange, totals []core.CategoryTotal) {
	a.p.Fprintf(a.out, "%s .. %s\n", r.Start, r.End)
	if len(totals) == 0 {
		a.p.Fprintln(a.out, "no expenses in range")
		return
	}

	shares := report.Shares(totals)
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i, t := range totals {
		a.p.Fprintf(tw, "%s\t%s\t%.1f%%\t\n", core.Category(t.Category).Label(), a.amount(t.Total), shares[i]*100)
	}
	tw.Flush()
}

func (a *app) printComparison(rows []core.ComparisonRow) {
	if len(rows) == 0 {
		a.p.Fprintln(a.out, "no expenses recorded")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	a.p.Fprintln(tw, "Description\tBudgeted\tActual\tDifference\t")
	for _, r := range rows {
		a.p.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", r.Description, a.amount(r.Budgeted), a.amount(r.Actual), a.amount(r.Difference))
	}
	t := report.Totals(rows)
	a.p.Fprintf(tw, "Total\t%s\t%s\t%s\t\n", a.amount(t.Budgeted), a.amount(t.Actual), a.amount(t.Difference))
	tw.Flush()
}
