package assistant

import (
	"context"
	"time"
)

// Store defines the cache/trending surface for the assistant.
type Store interface {
	GetAnswer(ctx context.Context, questionID int64) (AnswerRecord, bool, error)
	SaveAnswer(ctx context.Context, record AnswerRecord, ttl time.Duration) error
	IncrementQuery(ctx context.Context, canonical, display string) error
	TopQueries(ctx context.Context, limit int) ([]TrendingQuery, error)
	// TryAcquire takes the named in-flight guard; it reports false when a
	// duplicate long-running action is already in progress.
	TryAcquire(ctx context.Context, name string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, name string) error
}
