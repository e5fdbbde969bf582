package core

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the ISO 8601 form every persisted date uses.
const DateLayout = "2006-01-02"

const (
	FixedExpense    Category = "FixedExpense"
	PersonalLeisure Category = "PersonalLeisure"
	LoansOrCards    Category = "LoansOrCards"
	Savings         Category = "Savings"
	Unexpected      Category = "Unexpected"

	// CategoryOther selects a free-text category supplied by the user.
	CategoryOther Category = "Other"
)

type (
	Category string

	Date struct {
		time.Time
	}

	// Expense is a single ledger entry. ID is zero until the store assigns one.
	Expense struct {
		ID          int64
		Description string
		Budgeted    float64
		Actual      float64
		Category    string
		Date        Date
	}

	// ComparisonRow is an expense plus its budget-vs-actual difference. Never persisted.
	ComparisonRow struct {
		Expense
		Difference float64
	}
)

// FixedCategories lists the predefined categories in display order.
var FixedCategories = []Category{FixedExpense, PersonalLeisure, LoansOrCards, Savings, Unexpected}

// categoryLabels are the Spanish labels shown by the entry form; they are also accepted as input.
var categoryLabels = map[Category]string{
	FixedExpense:    "Gasto fijo",
	PersonalLeisure: "Personal/ocio",
	LoansOrCards:    "Préstamos/tarjetas",
	Savings:         "Ahorro",
	Unexpected:      "Imprevisto",
	CategoryOther:   "Otra",
}

// Label returns the human label of a known category, or the category itself.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// IsFixed reports whether c is one of the predefined categories.
func (c Category) IsFixed() bool {
	for _, f := range FixedCategories {
		if c == f {
			return true
		}
	}
	return false
}

// LookupCategory resolves an identifier or label (case-insensitive) to a category.
func LookupCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	for c, label := range categoryLabels {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, label) {
			return c, true
		}
	}
	return "", false
}

// NormalizeCategory maps the label of a fixed category ("Ahorro") to its
// identifier ("Savings"). Free-text categories come back unchanged, and so
// does "Otra", which the entry form never stores.
func NormalizeCategory(s string) string {
	for _, c := range FixedCategories {
		if strings.EqualFold(s, categoryLabels[c]) {
			return string(c)
		}
	}
	return s
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts only strict, zero-padded YYYY-MM-DD calendar dates.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	// Stored dates are compared as text, so only the canonical form is accepted.
	if t.Format(DateLayout) != s {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// String returns the ISO form used in storage and reports.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

// Compare returns the comparison row for e.
func (e Expense) Compare() ComparisonRow {
	return ComparisonRow{Expense: e, Difference: Difference(e.Budgeted, e.Actual)}
}

// Validate checks the rules every stored expense satisfies.
func (e Expense) Validate() error {
	if strings.TrimSpace(e.Description) == "" {
		return &FieldError{Field: FieldDescription, Err: ErrMissingField}
	}
	if strings.TrimSpace(e.Category) == "" {
		return &FieldError{Field: FieldCategory, Err: ErrMissingField}
	}
	if err := e.Date.Validate(); err != nil {
		return &FieldError{Field: FieldDate, Err: ErrMissingField}
	}
	if !isFinite(e.Budgeted) {
		return &FieldError{Field: FieldBudgeted, Err: ErrInvalidNumber}
	}
	if !isFinite(e.Actual) {
		return &FieldError{Field: FieldActual, Err: ErrInvalidNumber}
	}
	return nil
}
