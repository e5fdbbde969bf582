package services

import (
	"context"
	"fmt"
	"strconv"

	"gastos/internal/core"
)

// FormMode is the state of an EntryForm.
type FormMode int

const (
	Idle FormMode = iota
	Editing
)

func (m FormMode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Editing:
		return "editing"
	default:
		return "unknown"
	}
}

// EntryForm models the create/edit interaction of a front-end form.
//
// In Idle, Submit inserts a new expense. BeginEdit moves to Editing(id) and
// returns the stored values for pre-filling; Submit then replaces that record.
// A successful Submit and Cancel both return to Idle. A failed Submit keeps
// the current mode so the user can correct the input.
type EntryForm struct {
	svc       *LedgerService
	mode      FormMode
	editingID int64
}

func NewEntryForm(svc *LedgerService) *EntryForm {
	return &EntryForm{svc: svc}
}

// Mode returns the current state and, when Editing, the record being edited.
func (f *EntryForm) Mode() (FormMode, int64) {
	return f.mode, f.editingID
}

// BeginEdit loads expense id and switches to Editing.
func (f *EntryForm) BeginEdit(ctx context.Context, id int64) (core.Input, error) {
	e, err := f.svc.Get(ctx, id)
	if err != nil {
		return core.Input{}, err
	}
	f.mode = Editing
	f.editingID = id
	return InputFromExpense(e), nil
}

// Submit inserts or updates depending on the mode and returns the record id.
func (f *EntryForm) Submit(ctx context.Context, in core.Input) (int64, error) {
	switch f.mode {
	case Idle:
		return f.svc.Record(ctx, in)
	case Editing:
		id := f.editingID
		if err := f.svc.Amend(ctx, id, in); err != nil {
			return 0, err
		}
		f.Cancel()
		return id, nil
	default:
		return 0, fmt.Errorf("entry form in unknown mode %d", f.mode)
	}
}

// Cancel abandons an edit.
func (f *EntryForm) Cancel() {
	f.mode = Idle
	f.editingID = 0
}

// InputFromExpense renders a stored expense back into form fields. Amounts
// use the shortest exact representation so resubmitting changes nothing.
func InputFromExpense(e core.Expense) core.Input {
	in := core.Input{
		Description: e.Description,
		Budgeted:    strconv.FormatFloat(e.Budgeted, 'f', -1, 64),
		Actual:      strconv.FormatFloat(e.Actual, 'f', -1, 64),
		Category:    e.Category,
		Date:        e.Date.String(),
	}
	if c, ok := core.LookupCategory(e.Category); !ok || c == core.CategoryOther {
		in.Category = string(core.CategoryOther)
		in.OtherCategory = e.Category
	}
	return in
}
