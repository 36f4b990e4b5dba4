package history

import (
	"context"
	"sync"
)

// Synchronized wraps a store with a mutex so that a connection-bound
// implementation can be shared across goroutines.
func Synchronized(store Store) Store {
	return &synchronized{store: store}
}

type synchronized struct {
	mu    sync.Mutex
	store Store
}

func (s *synchronized) Put(ctx context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Put(ctx, entry)
}

func (s *synchronized) Get(ctx context.Context, fullName, fingerprint string) (Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Get(ctx, fullName, fingerprint)
}

func (s *synchronized) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Close(ctx)
}

var _ Store = (*synchronized)(nil)
