package assistantstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/skintrack/skintrack/internal/domain/assistant"
)

// ValkeyStore persists assistant cache data in a Valkey-compatible
// database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "assistant"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) GetAnswer(ctx context.Context, questionID int64) (assistant.AnswerRecord, bool, error) {
	if questionID <= 0 {
		return assistant.AnswerRecord{}, false, nil
	}
	result := s.client.Do(ctx, s.client.B().Get().Key(s.answerKey(questionID)).Build())
	payload, err := result.ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return assistant.AnswerRecord{}, false, nil
		}
		return assistant.AnswerRecord{}, false, err
	}
	var record assistant.AnswerRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return assistant.AnswerRecord{}, false, err
	}
	return record, true, nil
}

func (s *ValkeyStore) SaveAnswer(ctx context.Context, record assistant.AnswerRecord, ttl time.Duration) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.answerKey(record.QuestionID)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) IncrementQuery(ctx context.Context, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	if err := s.client.Do(ctx, s.client.B().Zincrby().Key(s.trendingKey()).Increment(1).Member(canonical).Build()).Error(); err != nil {
		return err
	}
	if display != "" {
		_ = s.client.Do(ctx, s.client.B().Set().Key(s.displayKey(canonical)).Value(display).Nx().Build()).Error()
	}
	return nil
}

func (s *ValkeyStore) TopQueries(ctx context.Context, limit int) ([]assistant.TrendingQuery, error) {
	if limit <= 0 {
		limit = 10
	}
	resp := s.client.Do(ctx, s.client.B().Zrevrange().Key(s.trendingKey()).Start(0).Stop(int64(limit-1)).Withscores().Build())
	members, err := resp.AsZScores()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]assistant.TrendingQuery, 0, len(members))
	for _, member := range members {
		out = append(out, assistant.TrendingQuery{
			Query: s.fetchDisplay(ctx, member.Member),
			Count: int64(member.Score),
		})
	}
	return out, nil
}

// TryAcquire implements the per-user in-flight guard with SET NX EX.
func (s *ValkeyStore) TryAcquire(ctx context.Context, name string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		ttl = time.Minute
	}
	result := s.client.Do(ctx, s.client.B().Set().Key(s.guardKey(name)).Value("1").Nx().Ex(ttl).Build())
	if err := result.Error(); err != nil {
		if valkey.IsValkeyNil(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *ValkeyStore) Release(ctx context.Context, name string) error {
	return s.client.Do(ctx, s.client.B().Del().Key(s.guardKey(name)).Build()).Error()
}

func (s *ValkeyStore) fetchDisplay(ctx context.Context, canonical string) string {
	display, err := s.client.Do(ctx, s.client.B().Get().Key(s.displayKey(canonical)).Build()).ToString()
	if err != nil || display == "" {
		return canonical
	}
	return display
}

func (s *ValkeyStore) answerKey(id int64) string {
	return fmt.Sprintf("%s:a:%d", s.prefix, id)
}

func (s *ValkeyStore) trendingKey() string {
	return s.prefix + ":trending"
}

func (s *ValkeyStore) displayKey(canonical string) string {
	return s.prefix + ":display:" + canonical
}

func (s *ValkeyStore) guardKey(name string) string {
	return s.prefix + ":guard:" + name
}

var _ assistant.Store = (*ValkeyStore)(nil)
