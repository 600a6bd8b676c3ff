package domain

import (
	"context"
	"sync"
)

// Collection is a best-effort snapshot of a backend collection. Every
// refresh replaces the whole list; a failed refresh keeps the old one.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
}

func (c *Collection[T]) Refresh(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	items, err := fetch(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	return nil
}

func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Reset() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}
