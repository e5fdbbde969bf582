package core

// CategoryTotal is the actual amount spent in one category.
type CategoryTotal struct {
	Category string
	Total    float64
}

// ComparisonTotals sums a set of comparison rows.
type ComparisonTotals struct {
	Budgeted   float64
	Actual     float64
	Difference float64
}

// DateRange is an inclusive [Start, End] interval of calendar days.
type DateRange struct {
	Start Date
	End   Date
}

// Validate rejects ranges whose start falls after their end.
func (r DateRange) Validate() error {
	if r.Start.IsZero() {
		return &FieldError{Field: "start_date", Err: ErrMissingField}
	}
	if r.End.IsZero() {
		return &FieldError{Field: "end_date", Err: ErrMissingField}
	}
	if r.Start.After(r.End.Time) {
		return ErrInvalidRange
	}
	return nil
}

// Contains reports whether d lies within the range, bounds included.
func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.Start.Time) && !d.After(r.End.Time)
}
