// Package memory implements an in-memory row store, used in tests and
// ephemeral deployments.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/pixelforge/gamevault/internal/store"
)

// Store is an in-memory implementation of the row store.
type Store struct {
	mu   sync.RWMutex
	rows []store.Row
}

// New creates a new in-memory store instance.
func New() *Store {
	return &Store{}
}

// Ensure Store implements the interface
var _ store.Store = (*Store)(nil)

func (s *Store) ReadAll(ctx context.Context) ([]store.Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]store.Row, len(s.rows))
	for i, row := range s.rows {
		rows[i] = maps.Clone(row)
	}
	return rows, nil
}

func (s *Store) Rewrite(ctx context.Context, rows []store.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows = make([]store.Row, len(rows))
	for i, row := range rows {
		s.rows[i] = maps.Clone(row)
	}
	return nil
}

func (s *Store) Append(ctx context.Context, row store.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows = append(s.rows, maps.Clone(row))
	return nil
}
