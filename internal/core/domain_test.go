package core

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2024-01-15", true},
		{"2024-02-29", true},
		{"2023-02-29", false}, // not a leap year
		{"2024-1-15", false},
		{"2024-01-5", false},
		{"15/01/2024", false},
		{"2024-13-01", false},
		{"", false},
		{"2024-01-15T00:00:00Z", false},
	}
	for _, tc := range cases {
		d, err := ParseDate(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("%q expected ok, got %v", tc.in, err)
			}
			if d.String() != tc.in {
				t.Fatalf("%q printed back as %q", tc.in, d.String())
			}
			continue
		}
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("%q expected ErrInvalidDate, got %v", tc.in, err)
		}
	}
}

func TestDateValidate(t *testing.T) {
	if err := NewDate(2025, 1, 1).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Date{Time: time.Time{}}).Validate(); err == nil {
		t.Fatalf("expected error for zero date")
	}
}

func TestLookupCategory(t *testing.T) {
	cases := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"Savings", Savings, true},
		{"savings", Savings, true},
		{"Ahorro", Savings, true},
		{" Gasto fijo ", FixedExpense, true},
		{"préstamos/tarjetas", LoansOrCards, true},
		{"Other", CategoryOther, true},
		{"Otra", CategoryOther, true},
		{"Groceries", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := LookupCategory(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("LookupCategory(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := map[string]string{
		"Ahorro":             "Savings",
		"gasto fijo":         "FixedExpense",
		"Préstamos/tarjetas": "LoansOrCards",
		"Savings":            "Savings",
		"Otra":               "Otra",
		"Mascotas":           "Mascotas",
	}
	for in, want := range tests {
		if got := NormalizeCategory(in); got != want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCategoryLabel(t *testing.T) {
	if got := Unexpected.Label(); got != "Imprevisto" {
		t.Fatalf("Unexpected.Label() = %q", got)
	}
	if got := Category("Mascotas").Label(); got != "Mascotas" {
		t.Fatalf("free-text label = %q", got)
	}
	if !Savings.IsFixed() || CategoryOther.IsFixed() {
		t.Fatalf("IsFixed mismatch")
	}
}

func TestExpenseCompare(t *testing.T) {
	e := Expense{ID: 1, Description: "Rent", Budgeted: 500.0, Actual: 430.5, Category: "FixedExpense", Date: NewDate(2024, 1, 1)}
	row := e.Compare()
	if row.Difference != 69.5 {
		t.Fatalf("difference = %v, want 69.5", row.Difference)
	}
	if row.Expense != e {
		t.Fatalf("comparison row changed the expense: %+v", row.Expense)
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{Description: "ok", Budgeted: 1, Actual: 2, Category: "Savings", Date: NewDate(2025, 1, 1)}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Expense{
		{Description: "", Category: "c", Date: NewDate(2025, 1, 1)},
		{Description: "a", Category: " ", Date: NewDate(2025, 1, 1)},
		{Description: "a", Category: "c"},
	}
	for i, e := range bads {
		if err := e.Validate(); !errors.Is(err, ErrMissingField) {
			t.Fatalf("case %d expected ErrMissingField, got %v", i, err)
		}
	}
}

func TestDateRange(t *testing.T) {
	r := DateRange{Start: NewDate(2024, 1, 1), End: NewDate(2024, 1, 31)}
	if err := r.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	for _, d := range []Date{NewDate(2024, 1, 1), NewDate(2024, 1, 15), NewDate(2024, 1, 31)} {
		if !r.Contains(d) {
			t.Fatalf("%s should be inside %s..%s", d, r.Start, r.End)
		}
	}
	if r.Contains(NewDate(2024, 2, 1)) || r.Contains(NewDate(2023, 12, 31)) {
		t.Fatalf("range should exclude neighbouring days")
	}

	inverted := DateRange{Start: r.End, End: r.Start}
	if err := inverted.Validate(); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("database is locked")
	err := error(&PersistenceError{Op: "insert", Err: cause})
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence match")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected driver cause to unwrap")
	}
	if IsValidation(err) {
		t.Fatalf("persistence error is not a validation error")
	}
}
