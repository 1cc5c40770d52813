package kvstore

import (
	"context"
	"encoding/json"
	"time"
)

// Store is the typed key-value surface every date-scoped document in the
// app is persisted through. Writes are full overwrites, reads return a
// presence flag, and Replace applies a multi-key batch so derived keys
// can be cleared together with the write that invalidates them.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Remove(ctx context.Context, key string) error
	Replace(ctx context.Context, set map[string]Entry, remove []string) error
}

// Entry pairs a value with its optional TTL for batch writes.
type Entry struct {
	Value []byte
	TTL   time.Duration
}

// GetJSON loads and decodes a stored document. A decode failure is
// returned as-is; callers decide whether to drop the corrupted key.
func GetJSON[T any](ctx context.Context, store Store, key string) (T, bool, error) {
	var out T
	payload, ok, err := store.Get(ctx, key)
	if err != nil || !ok {
		return out, false, err
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		return out, false, err
	}
	return out, true, nil
}

// SetJSON encodes and stores a document, overwriting any prior value.
func SetJSON[T any](ctx context.Context, store Store, key string, value T, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, payload, ttl)
}
