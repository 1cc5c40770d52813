package skinlogrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/skintrack/skintrack/internal/domain/skinlog"
)

// MemoryRepository keeps entries in memory for tests and local dev.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries []skinlog.Entry
}

// NewMemoryRepository constructs the repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// CreateEntry implements skinlog.Repository.
func (r *MemoryRepository) CreateEntry(_ context.Context, entry skinlog.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

// ListScores implements skinlog.Repository.
func (r *MemoryRepository) ListScores(_ context.Context, userID int64, from, to string) ([]skinlog.DayScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	latest := make(map[string]skinlog.Entry)
	for _, entry := range r.entries {
		if entry.UserID != userID || entry.Date < from || entry.Date > to {
			continue
		}
		if prior, ok := latest[entry.Date]; !ok || entry.CreatedAt.After(prior.CreatedAt) {
			latest[entry.Date] = entry
		}
	}

	scores := make([]skinlog.DayScore, 0, len(latest))
	for date, entry := range latest {
		scores = append(scores, skinlog.DayScore{Date: date, Score: entry.OverallScore})
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].Date < scores[j].Date })
	return scores, nil
}

var _ skinlog.Repository = (*MemoryRepository)(nil)
