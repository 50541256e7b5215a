package ledger

import (
	"context"
	"fmt"
	"sync"

	"fintrack/internal/core"
)

// MemoryStore keeps the ledger in process memory. Used in tests and as
// an ephemeral backend for trying the app without touching disk.
type MemoryStore struct {
	mu    sync.Mutex
	items []core.Transaction
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append stores the transaction and returns a synthetic row reference.
func (s *MemoryStore) Append(_ context.Context, tx core.Transaction) (string, error) {
	if err := tx.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, tx)
	return fmt.Sprintf("mem:%d", len(s.items)), nil
}

// LoadAll returns a copy so callers cannot mutate the ledger.
func (s *MemoryStore) LoadAll(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		return nil, nil
	}
	out := make([]core.Transaction, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return nil
}
