package core

import "strings"

// Input is the raw text collected by a front-end form.
type Input struct {
	Description   string
	Budgeted      string
	Actual        string
	Category      string
	OtherCategory string // only read when Category selects CategoryOther
	Date          string
}

// Validate turns raw form input into an expense ready for insert or update.
//
// Checks run in a fixed order and the first failure wins:
//  1. description, both amounts and the date must be present (ErrMissingField)
//  2. both amounts must be finite decimal numbers (ErrInvalidNumber)
//  3. "Other" needs a non-blank free-text category (ErrMissingField)
//  4. the date must be a strict YYYY-MM-DD calendar date (ErrInvalidDate)
//  5. any other category must be known (ErrMissingField, ErrUnknownCategory)
//
// Every error is a *FieldError wrapping one of the sentinels.
func Validate(in Input) (Expense, error) {
	required := []struct {
		field, value string
	}{
		{FieldDescription, in.Description},
		{FieldBudgeted, in.Budgeted},
		{FieldActual, in.Actual},
		{FieldDate, in.Date},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return Expense{}, &FieldError{Field: r.field, Err: ErrMissingField}
		}
	}

	budgeted, err := ParseAmount(in.Budgeted)
	if err != nil {
		return Expense{}, &FieldError{Field: FieldBudgeted, Err: err}
	}
	actual, err := ParseAmount(in.Actual)
	if err != nil {
		return Expense{}, &FieldError{Field: FieldActual, Err: err}
	}

	selected, known := LookupCategory(in.Category)
	category := string(selected)
	if known && selected == CategoryOther {
		category = strings.TrimSpace(in.OtherCategory)
		if category == "" {
			return Expense{}, &FieldError{Field: FieldOtherCategory, Err: ErrMissingField}
		}
	}

	date, err := ParseDate(strings.TrimSpace(in.Date))
	if err != nil {
		return Expense{}, &FieldError{Field: FieldDate, Err: err}
	}

	if strings.TrimSpace(in.Category) == "" {
		return Expense{}, &FieldError{Field: FieldCategory, Err: ErrMissingField}
	}
	if !known {
		return Expense{}, &FieldError{Field: FieldCategory, Err: ErrUnknownCategory}
	}

	return Expense{
		Description: in.Description,
		Budgeted:    budgeted,
		Actual:      actual,
		Category:    category,
		Date:        date,
	}, nil
}
