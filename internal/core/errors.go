package core

import (
	"errors"
	"fmt"
)

// Form field names reported by FieldError.
const (
	FieldDescription   = "description"
	FieldBudgeted      = "budgeted_amount"
	FieldActual        = "actual_amount"
	FieldCategory      = "category"
	FieldOtherCategory = "other_category"
	FieldDate          = "date"
)

var (
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidRange    = errors.New("start date is after end date")
	ErrNotFound        = errors.New("expense not found")
	ErrPersistence     = errors.New("storage unavailable")
)

// FieldError ties a validation failure to the form field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// PersistenceError reports that the store could not complete Op.
// Nothing was committed when it is returned.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrPersistence, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// IsValidation reports whether err is one of the recoverable input errors.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrInvalidNumber) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrUnknownCategory) ||
		errors.Is(err, ErrInvalidRange)
}
