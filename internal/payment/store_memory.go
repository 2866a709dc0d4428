package payment

import (
	"context"
	"sync"
)

// MemoryStore keeps accepted transactions in process memory, append-only.
type MemoryStore struct {
	mu  sync.Mutex
	txs []Transaction
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append implements TransactionStore.
func (s *MemoryStore) Append(ctx context.Context, tx Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append(s.txs, tx)
	return nil
}

// All returns a copy of the stored transactions, for tests and diagnostics.
func (s *MemoryStore) All() []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}
