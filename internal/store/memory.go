package store

import (
	"context"
	"sync"
)

// MemoryBackend keeps documents in process memory. Used by tests and local runs.
type MemoryBackend struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{docs: make(map[string][]byte)}
}

func (b *MemoryBackend) Load(_ context.Context, collection string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, ok := b.docs[collection]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (b *MemoryBackend) Save(_ context.Context, collection string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	b.docs[collection] = stored
	return nil
}

func (b *MemoryBackend) Close() error {
	return nil
}
