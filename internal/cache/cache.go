// Package cache wraps a store.Store with typed, compute-once resolution
// caching.
package cache

import (
	"encoding/json"

	"github.com/zielmicha/satori-cli/internal/store"
)

// Cache remembers successful resolutions forever; failed computes are
// returned to the caller and never recorded, so a typo or a
// not-yet-visible contest does not poison later lookups. Writes are
// persisted before GetOrCompute returns, so results survive across runs.
type Cache[V any] struct {
	store *store.Store
}

func New[V any](path string) *Cache[V] {
	return &Cache[V]{store: store.Open(path)}
}

// Key serializes the exact arguments of a resolving call into a stable
// cache key. JSON keeps it order- and type-sensitive: Key(42) and
// Key("42") are distinct entries.
func Key(args ...any) string {
	b, err := json.Marshal(args)
	if err != nil {
		// keys are built from ints and strings; anything else is a
		// programming error
		panic(err)
	}
	return string(b)
}

// GetOrCompute returns the cached value for key, or runs compute exactly
// once, persists its result, and returns it. A compute error is returned
// without being cached.
func (c *Cache[V]) GetOrCompute(key string, compute func() (V, error)) (V, error) {
	var v V
	raw, ok, err := c.store.Get(key)
	if err != nil {
		return v, err
	}
	if ok {
		if err := json.Unmarshal(raw, &v); err == nil {
			return v, nil
		}
		// unreadable entry, recompute it
	}
	v, err = compute()
	if err != nil {
		return v, err
	}
	raw, err = json.Marshal(v)
	if err != nil {
		return v, err
	}
	if err := c.store.Set(key, raw); err != nil {
		return v, err
	}
	return v, nil
}

// Clear drops every cached resolution.
func (c *Cache[V]) Clear() error {
	return c.store.Clear()
}
