// Package store holds the in-memory transaction collection. All state
// lives for the lifetime of the process; there is no persistence.
package store

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"fbmobile/internal/core"
)

var ErrNotFound = errors.New("transaction not found")

// Store is an ordered in-memory collection of transactions. Insertion
// order is preserved and is not necessarily chronological by date.
type Store struct {
	mu    sync.Mutex
	items []core.Transaction
}

func New() *Store {
	return &Store{}
}

// Add mints a new id, applies the patch to a fresh record, derives the
// profit and appends the record.
func (s *Store) Add(p core.Patch) core.Transaction {
	tx := core.Transaction{ID: uuid.NewString()}
	p.Apply(&tx)

	s.mu.Lock()
	s.items = append(s.items, tx)
	s.mu.Unlock()

	slog.Debug("Transaction added", "id", tx.ID, "category", tx.Category, "date", tx.Date)
	return tx
}

// Update merges the patch onto the record with the given id and
// recomputes its profit. The id is preserved. Returns ErrNotFound when
// no live record has that id.
func (s *Store) Update(id string, p core.Patch) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			p.Apply(&s.items[i])
			return s.items[i], nil
		}
	}
	return core.Transaction{}, ErrNotFound
}

// Delete removes the record with the given id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Get returns the record with the given id, used to prefill the edit form.
func (s *Store) Get(id string) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tx := range s.items {
		if tx.ID == id {
			return tx, nil
		}
	}
	return core.Transaction{}, ErrNotFound
}

// List returns a snapshot of the collection in insertion order.
func (s *Store) List() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Transaction, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of live transactions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
