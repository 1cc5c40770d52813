package skinlog

import "context"

// Repository persists scored entries relationally.
type Repository interface {
	// CreateEntry inserts the parent skin log row and its child
	// daily-factors row in a single transaction.
	CreateEntry(ctx context.Context, entry Entry) error
	// ListScores returns one score per day within [from, to], ordered by
	// date ascending.
	ListScores(ctx context.Context, userID int64, from, to string) ([]DayScore, error)
}
