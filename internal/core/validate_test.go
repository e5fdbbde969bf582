package core

import (
	"errors"
	"testing"
)

func validInput() Input {
	return Input{
		Description: "Rent",
		Budgeted:    "500",
		Actual:      "430.5",
		Category:    "FixedExpense",
		Date:        "2024-01-15",
	}
}

func TestValidate_OK(t *testing.T) {
	e, err := Validate(validInput())
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	want := Expense{
		Description: "Rent",
		Budgeted:    500,
		Actual:      430.5,
		Category:    "FixedExpense",
		Date:        NewDate(2024, 1, 15),
	}
	if e != want {
		t.Fatalf("got %+v, want %+v", e, want)
	}
	if e.ID != 0 {
		t.Fatalf("validated expense must not carry an id")
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Input)
		wantErr   error
		wantField string
	}{
		{
			name:      "empty description",
			mutate:    func(in *Input) { in.Description = "" },
			wantErr:   ErrMissingField,
			wantField: FieldDescription,
		},
		{
			name:      "blank description",
			mutate:    func(in *Input) { in.Description = "   " },
			wantErr:   ErrMissingField,
			wantField: FieldDescription,
		},
		{
			name:      "empty budgeted",
			mutate:    func(in *Input) { in.Budgeted = "" },
			wantErr:   ErrMissingField,
			wantField: FieldBudgeted,
		},
		{
			name:      "empty actual",
			mutate:    func(in *Input) { in.Actual = "" },
			wantErr:   ErrMissingField,
			wantField: FieldActual,
		},
		{
			name:      "empty date",
			mutate:    func(in *Input) { in.Date = "" },
			wantErr:   ErrMissingField,
			wantField: FieldDate,
		},
		{
			name:      "budgeted not a number",
			mutate:    func(in *Input) { in.Budgeted = "abc" },
			wantErr:   ErrInvalidNumber,
			wantField: FieldBudgeted,
		},
		{
			name:      "actual not finite",
			mutate:    func(in *Input) { in.Actual = "NaN" },
			wantErr:   ErrInvalidNumber,
			wantField: FieldActual,
		},
		{
			name: "description checked before numbers",
			mutate: func(in *Input) {
				in.Description = ""
				in.Budgeted = "abc"
			},
			wantErr:   ErrMissingField,
			wantField: FieldDescription,
		},
		{
			name: "missing date checked before numbers",
			mutate: func(in *Input) {
				in.Date = ""
				in.Actual = "x"
			},
			wantErr:   ErrMissingField,
			wantField: FieldDate,
		},
		{
			name: "other without free text",
			mutate: func(in *Input) {
				in.Category = "Other"
				in.OtherCategory = "  "
			},
			wantErr:   ErrMissingField,
			wantField: FieldOtherCategory,
		},
		{
			name: "numbers checked before other category",
			mutate: func(in *Input) {
				in.Category = "Other"
				in.Actual = "abc"
			},
			wantErr:   ErrInvalidNumber,
			wantField: FieldActual,
		},
		{
			name:      "date not zero padded",
			mutate:    func(in *Input) { in.Date = "2024-1-5" },
			wantErr:   ErrInvalidDate,
			wantField: FieldDate,
		},
		{
			name:      "empty category",
			mutate:    func(in *Input) { in.Category = "" },
			wantErr:   ErrMissingField,
			wantField: FieldCategory,
		},
		{
			name:      "unknown category",
			mutate:    func(in *Input) { in.Category = "Groceries" },
			wantErr:   ErrUnknownCategory,
			wantField: FieldCategory,
		},
		{
			name: "date checked before unknown category",
			mutate: func(in *Input) {
				in.Category = "Groceries"
				in.Date = "yesterday"
			},
			wantErr:   ErrInvalidDate,
			wantField: FieldDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := Validate(in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *FieldError, got %T", err)
			}
			if fe.Field != tt.wantField {
				t.Errorf("field = %q, want %q", fe.Field, tt.wantField)
			}
			if !IsValidation(err) {
				t.Errorf("IsValidation(%v) = false", err)
			}
		})
	}
}

func TestValidate_OtherCategoryStoredVerbatim(t *testing.T) {
	in := validInput()
	in.Category = "Other"
	in.OtherCategory = "  Mascotas y veterinario "

	e, err := Validate(in)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if e.Category != "Mascotas y veterinario" {
		t.Fatalf("category = %q", e.Category)
	}
}

func TestValidate_LabelAliasNormalised(t *testing.T) {
	in := validInput()
	in.Category = "Ahorro"
	in.OtherCategory = "ignored"

	e, err := Validate(in)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if e.Category != string(Savings) {
		t.Fatalf("category = %q, want %q", e.Category, Savings)
	}
}

func TestValidate_NegativeAmountsAllowed(t *testing.T) {
	in := validInput()
	in.Budgeted = "-20"
	in.Actual = "-0.5"

	e, err := Validate(in)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if e.Budgeted != -20 || e.Actual != -0.5 {
		t.Fatalf("amounts = %v, %v", e.Budgeted, e.Actual)
	}
}
