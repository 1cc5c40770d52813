package assistantstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/skintrack/skintrack/internal/domain/assistant"
)

type cachedAnswer struct {
	payload   assistant.AnswerRecord
	expiresAt time.Time
}

type guardEntry struct {
	expiresAt time.Time
}

// MemoryStore is an in-memory assistant.Store for tests and local dev.
type MemoryStore struct {
	mu       sync.Mutex
	answers  map[int64]cachedAnswer
	trending map[string]int64
	displays map[string]string
	guards   map[string]guardEntry
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		answers:  make(map[int64]cachedAnswer),
		trending: make(map[string]int64),
		displays: make(map[string]string),
		guards:   make(map[string]guardEntry),
	}
}

func (s *MemoryStore) GetAnswer(_ context.Context, questionID int64) (assistant.AnswerRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.answers[questionID]
	if !ok {
		return assistant.AnswerRecord{}, false, nil
	}
	if expired(record.expiresAt) {
		delete(s.answers, questionID)
		return assistant.AnswerRecord{}, false, nil
	}
	return record.payload, true, nil
}

func (s *MemoryStore) SaveAnswer(_ context.Context, record assistant.AnswerRecord, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.answers[record.QuestionID] = cachedAnswer{payload: record, expiresAt: exp}
	return nil
}

func (s *MemoryStore) IncrementQuery(_ context.Context, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trending[canonical]++
	if _, exists := s.displays[canonical]; !exists {
		s.displays[canonical] = display
	}
	return nil
}

func (s *MemoryStore) TopQueries(_ context.Context, limit int) ([]assistant.TrendingQuery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit <= 0 {
		limit = len(s.trending)
	}
	items := make([]assistant.TrendingQuery, 0, len(s.trending))
	for canonical, count := range s.trending {
		display := s.displays[canonical]
		if display == "" {
			display = canonical
		}
		items = append(items, assistant.TrendingQuery{Query: display, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Query < items[j].Query
		}
		return items[i].Count > items[j].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *MemoryStore) TryAcquire(_ context.Context, name string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		ttl = time.Minute
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if guard, ok := s.guards[name]; ok && !expired(guard.expiresAt) {
		return false, nil
	}
	s.guards[name] = guardEntry{expiresAt: time.Now().Add(ttl)}
	return true, nil
}

func (s *MemoryStore) Release(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.guards, name)
	return nil
}

func expired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(time.Now())
}

var _ assistant.Store = (*MemoryStore)(nil)
