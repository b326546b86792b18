package repositories

import (
	"context"
	"sync"
)

// MemoryDocumentStore is an in-memory implementation of DocumentStore.
// Nothing survives the process; it backs tests and the "memory" backend.
type MemoryDocumentStore struct {
	data   []byte
	exists bool
	writes int
	mu     sync.RWMutex
}

// NewMemoryDocumentStore creates an empty MemoryDocumentStore.
func NewMemoryDocumentStore() *MemoryDocumentStore {
	return &MemoryDocumentStore{}
}

// Read returns a copy of the last written document.
func (s *MemoryDocumentStore) Read(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.exists {
		return nil, ErrNoDocument
	}
	return append([]byte(nil), s.data...), nil
}

// Write replaces the document with a copy of data.
func (s *MemoryDocumentStore) Write(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = append([]byte(nil), data...)
	s.exists = true
	s.writes++
	return nil
}

// Writes returns how many times Write has been called.
func (s *MemoryDocumentStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}
