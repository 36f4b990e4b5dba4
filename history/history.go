// Package history persists per-method scan results so that unchanged
// methods are not scanned again.
//
// Entries are keyed by the class-qualified method name. A stored entry
// is only reused when the method's fingerprint still matches, so any
// change to a method's bytecode invalidates its history.
package history

import (
	"context"
	"sync"
	"time"
)

// Entry is one stored scan result.
type Entry struct {
	FullName    string    `json:"full_name"`
	Fingerprint string    `json:"fingerprint"`
	Lines       []int     `json:"lines"`
	ScannedAt   time.Time `json:"scanned_at"`
}

// Store persists scan results between runs.
type Store interface {
	// Put stores the entry, replacing any previous entry for the same
	// method.
	Put(ctx context.Context, entry Entry) error

	// Get returns the stored entry for the method if one exists and its
	// fingerprint matches.
	Get(ctx context.Context, fullName, fingerprint string) (Entry, bool, error)

	// Close releases any resources held by the store.
	Close(ctx context.Context) error
}

// Memory is an in-process Store. It is safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// NewMemory creates an empty in-process store.
func NewMemory() *Memory {
	return &Memory{entries: map[string]Entry{}}
}

func (m *Memory) Put(ctx context.Context, entry Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.FullName] = entry
	return nil
}

func (m *Memory) Get(ctx context.Context, fullName, fingerprint string) (Entry, bool, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[fullName]
	if !ok || entry.Fingerprint != fingerprint {
		return Entry{}, false, nil
	}
	return entry, true, nil
}

func (m *Memory) Close(ctx context.Context) error {
	return nil
}

// Len returns the number of stored entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

var _ Store = (*Memory)(nil)
