package recordstore

import (
	"context"
	"encoding/json"
)

// WarnFunc is invoked when a read finds a value that cannot be deserialized.
// The collection still returns empty in that case; the hook exists so callers
// can surface the silent-data-loss gap in their logs.
type WarnFunc func(key string, err error)

// Collection is a typed view over a Store key holding a JSON array of T.
type Collection[T any] struct {
	store Store
	warn  WarnFunc
}

func NewCollection[T any](store Store, warn WarnFunc) *Collection[T] {
	return &Collection[T]{store: store, warn: warn}
}

// Read returns the collection at key. A missing key or a corrupt value both
// yield an empty slice: no caller has a recovery strategy for corruption, so
// the store fails soft and reports through the warn hook.
func (c *Collection[T]) Read(ctx context.Context, key string) ([]T, error) {
	raw, found, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		if c.warn != nil {
			c.warn(key, err)
		}
		return []T{}, nil
	}
	return items, nil
}

// Write serializes items and replaces the whole collection at key. There is
// no merge path: concurrent writers to the same key race and the last write
// wins, which is the contract every repository relies on.
func (c *Collection[T]) Write(ctx context.Context, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, key, raw)
}

// Drop removes the collection at key entirely.
func (c *Collection[T]) Drop(ctx context.Context, key string) error {
	return c.store.Delete(ctx, key)
}
