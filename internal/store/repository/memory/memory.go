// Package memory provides an in-memory credential repository, used as the
// default backend and as a stand-in in tests.
package memory

import (
	"context"
	"sync"
)

// Repository is a mutex-guarded in-memory credential repository.
type Repository struct {
	namespace string
	mu        sync.RWMutex
	entries   map[string][]byte
}

// NewRepository creates an empty in-memory repository for one service namespace.
func NewRepository(namespace string) *Repository {
	return &Repository{
		namespace: namespace,
		entries:   make(map[string][]byte),
	}
}

// Put stores data under account, replacing any existing entry.
func (r *Repository) Put(ctx context.Context, account string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	r.entries[r.key(account)] = stored
	return nil
}

// Get returns the data for account; found is false when absent.
func (r *Repository) Get(ctx context.Context, account string) ([]byte, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.entries[r.key(account)]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

// Delete removes the entry for account; deleting an absent entry is a no-op.
func (r *Repository) Delete(ctx context.Context, account string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, r.key(account))
	return nil
}

func (r *Repository) key(account string) string {
	return r.namespace + "/" + account
}
