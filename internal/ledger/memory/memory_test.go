package memory

import (
	"context"
	"errors"
	"testing"

	"gastos/internal/core"
)

func sample(desc string) core.Expense {
	return core.Expense{
		Description: desc,
		Budgeted:    10,
		Actual:      7.5,
		Category:    string(core.Savings),
		Date:        core.NewDate(2024, 1, 15),
	}
}

func TestStoreInsertAndGet(t *testing.T) {
	ctx := context.Background()
	s := New()

	id1, err := s.Insert(ctx, sample("a"))
	if err != nil || id1 != 1 {
		t.Fatalf("unexpected insert: id=%d err=%v", id1, err)
	}
	id2, _ := s.Insert(ctx, sample("b"))
	if id2 != 2 {
		t.Fatalf("expected id 2, got %d", id2)
	}

	got, err := s.GetByID(ctx, id1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := sample("a")
	want.ID = id1
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	all, _ := s.GetAll(ctx)
	if len(all) != 2 || all[0].Description != "a" || all[1].Description != "b" {
		t.Fatalf("unexpected order: %+v", all)
	}
}

func TestStoreUpdateDelete(t *testing.T) {
	ctx := context.Background()
	s := New(sample("seed"))

	changed := sample("changed")
	changed.Category = "Mascotas"
	if err := s.Update(ctx, 1, changed); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := s.GetByID(ctx, 1)
	if got.Description != "changed" || got.Category != "Mascotas" || got.ID != 1 {
		t.Fatalf("update not applied: %+v", got)
	}

	if err := s.Delete(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetByID(ctx, 1); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Delete(ctx, 1); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("second delete expected ErrNotFound, got %v", err)
	}
	if err := s.Update(ctx, 1, changed); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("update of deleted id expected ErrNotFound, got %v", err)
	}
}

func TestStoreIdsNotReused(t *testing.T) {
	ctx := context.Background()
	s := New()
	id, _ := s.Insert(ctx, sample("a"))
	_ = s.Delete(ctx, id)
	next, _ := s.Insert(ctx, sample("b"))
	if next == id {
		t.Fatalf("id %d reused after delete", id)
	}
}

func TestStoreGetAllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := New(sample("a"))
	all, _ := s.GetAll(ctx)
	all[0].Description = "mutated"
	got, _ := s.GetByID(ctx, 1)
	if got.Description != "a" {
		t.Fatalf("GetAll leaked internal state")
	}
}
