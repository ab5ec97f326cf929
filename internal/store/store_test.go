package store

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"fbmobile/internal/core"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string { return &s }

func catPtr(c core.Category) *core.Category { return &c }

func sellPatch(date, model, cost, price string) core.Patch {
	return core.Patch{
		Date:     strPtr(date),
		Category: catPtr(core.SellPhone),
		Model:    strPtr(model),
		Cost:     decPtr(cost),
		Price:    decPtr(price),
	}
}

func TestAddAssignsIDAndProfit(t *testing.T) {
	s := New()

	tx := s.Add(sellPatch("2025-07-01", "VIVO", "6000", "8500"))

	if tx.ID == "" {
		t.Error("Add did not assign an id")
	}
	if !tx.Profit.Equal(dec("2500")) {
		t.Errorf("Profit = %s, want 2500", tx.Profit)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	s := New()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		tx := s.Add(sellPatch("2025-07-01", "VIVO", "0", "100"))
		if seen[tx.ID] {
			t.Fatalf("duplicate id %q", tx.ID)
		}
		seen[tx.ID] = true
	}
}

func TestUpdateRecomputesProfitAndKeepsID(t *testing.T) {
	s := New()
	tx := s.Add(sellPatch("2025-07-01", "VIVO", "300", "1000"))

	got, err := s.Update(tx.ID, core.Patch{
		Price: decPtr("800"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.ID != tx.ID {
		t.Errorf("id changed: %q -> %q", tx.ID, got.ID)
	}
	if !got.Profit.Equal(dec("500")) {
		t.Errorf("Profit = %s, want 500", got.Profit)
	}

	stored, err := s.Get(tx.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !stored.Price.Equal(dec("800")) || !stored.Profit.Equal(dec("500")) {
		t.Errorf("stored record not updated: %+v", stored)
	}
}

func TestUpdateMissingID(t *testing.T) {
	s := New()
	s.Add(sellPatch("2025-07-01", "VIVO", "0", "100"))

	_, err := s.Update("no-such-id", core.Patch{Price: decPtr("1")})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	s := New()
	a := s.Add(sellPatch("2025-07-01", "VIVO", "0", "100"))
	b := s.Add(sellPatch("2025-07-02", "OPPO", "0", "200"))

	if err := s.Delete(a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
	if _, err := s.Get(a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted record still readable, err = %v", err)
	}
	if _, err := s.Get(b.ID); err != nil {
		t.Errorf("surviving record missing: %v", err)
	}
}

func TestDeleteMissingIDLeavesStoreUnchanged(t *testing.T) {
	s := New()
	s.Add(sellPatch("2025-07-01", "VIVO", "0", "100"))
	s.Add(sellPatch("2025-07-02", "OPPO", "0", "200"))
	before := s.List()

	if err := s.Delete("no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	after := s.List()
	if len(after) != len(before) {
		t.Fatalf("len changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if after[i].ID != before[i].ID {
			t.Errorf("order changed at %d: %q -> %q", i, before[i].ID, after[i].ID)
		}
	}
}

func TestListReturnsSnapshot(t *testing.T) {
	s := New()
	s.Add(sellPatch("2025-07-01", "VIVO", "0", "100"))

	list := s.List()
	list[0].Model = "mutated"

	fresh := s.List()
	if fresh[0].Model == "mutated" {
		t.Error("List exposes internal state")
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s := New()
	dates := []string{"2025-07-03", "2025-07-01", "2025-07-02"}
	for _, d := range dates {
		s.Add(sellPatch(d, "VIVO", "0", "100"))
	}

	list := s.List()
	for i, d := range dates {
		if list[i].Date != d {
			t.Errorf("list[%d].Date = %s, want %s", i, list[i].Date, d)
		}
	}
}
