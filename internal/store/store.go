// Package store persists whole entity collections. Every mutation loads the
// full collection, edits it in memory and writes it back while holding the
// collection's lock, so concurrent requests in one process never lose writes.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// ErrStorage wraps every failure coming from a Backend.
var ErrStorage = errors.New("storage error")

const (
	UsersCollection       = "users"
	EventsCollection      = "events"
	TodosCollection       = "todos"
	HabitsCollection      = "habits"
	CompletionsCollection = "habitCompletions"
)

// Backend stores one JSON array document per collection name.
type Backend interface {
	// Load returns the stored document, or nil when the collection was never saved.
	Load(ctx context.Context, collection string) ([]byte, error)
	Save(ctx context.Context, collection string, data []byte) error
	Close() error
}

type Collection[T any] struct {
	name    string
	backend Backend
	mu      sync.Mutex
}

func NewCollection[T any](backend Backend, name string) *Collection[T] {
	return &Collection[T]{name: name, backend: backend}
}

func (c *Collection[T]) Name() string {
	return c.name
}

// All returns a snapshot of every record in the collection.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Update applies fn to the current records and saves what it returns. When fn
// fails nothing is written and its error is returned unchanged.
func (c *Collection[T]) Update(ctx context.Context, fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		return err
	}

	updated, err := fn(records)
	if err != nil {
		return err
	}

	return c.save(ctx, updated)
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	data, err := c.backend.Load(ctx, c.name)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrStorage, c.name, err)
	}
	if len(data) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrStorage, c.name, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (c *Collection[T]) save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", ErrStorage, c.name, err)
	}
	if err := c.backend.Save(ctx, c.name, data); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrStorage, c.name, err)
	}
	return nil
}
