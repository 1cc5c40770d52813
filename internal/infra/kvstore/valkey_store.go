package kvstore

import (
	"context"
	"time"

	"github.com/valkey-io/valkey-go"
)

// ValkeyStore persists documents in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "skintrack"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// Get implements Store.
func (s *ValkeyStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	cmd := s.client.B().Get().Key(s.fullKey(key)).Build()
	payload, err := s.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}

// Set implements Store.
func (s *ValkeyStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Do(ctx, s.setCmd(key, value, ttl)).Error()
}

// Remove implements Store.
func (s *ValkeyStore) Remove(ctx context.Context, key string) error {
	return s.client.Do(ctx, s.client.B().Del().Key(s.fullKey(key)).Build()).Error()
}

// Replace sends the writes and deletes as one pipelined batch so a plan
// save and its stale derived-key cleanup land together.
func (s *ValkeyStore) Replace(ctx context.Context, set map[string]Entry, remove []string) error {
	cmds := make(valkey.Commands, 0, len(set)+1)
	for key, entry := range set {
		cmds = append(cmds, s.setCmd(key, entry.Value, entry.TTL))
	}
	if len(remove) > 0 {
		del := s.client.B().Del().Key(s.fullKey(remove[0]))
		for _, key := range remove[1:] {
			del = del.Key(s.fullKey(key))
		}
		cmds = append(cmds, del.Build())
	}
	if len(cmds) == 0 {
		return nil
	}
	for _, result := range s.client.DoMulti(ctx, cmds...) {
		if err := result.Error(); err != nil {
			return err
		}
	}
	return nil
}

func (s *ValkeyStore) setCmd(key string, value []byte, ttl time.Duration) valkey.Completed {
	builder := s.client.B().Set().Key(s.fullKey(key)).Value(valkey.BinaryString(value))
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		return builder.Ex(ttl).Build()
	}
	return builder.Build()
}

func (s *ValkeyStore) fullKey(key string) string {
	return s.prefix + ":" + key
}

var _ Store = (*ValkeyStore)(nil)
