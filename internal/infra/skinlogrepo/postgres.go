package skinlogrepo

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skintrack/skintrack/internal/domain/skinlog"
)

// PostgresRepository implements skinlog.Repository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// CreateEntry inserts the parent row and its daily-factors child in one
// transaction so a partial write never survives.
func (r *PostgresRepository) CreateEntry(ctx context.Context, entry skinlog.Entry) error {
	factors, err := json.Marshal(entry.Factors)
	if err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		INSERT INTO skin_logs (id, user_id, log_date, overall_score, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, entry.ID, entry.UserID, entry.Date, entry.OverallScore, entry.Notes, entry.CreatedAt); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO daily_factors (id, skin_log_id, factors, created_at)
		VALUES ($1, $2, $3, $4)
	`, uuid.New(), entry.ID, factors, entry.CreatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ListScores returns daily scores in the inclusive date range, ascending.
// Multiple entries on one day collapse to the latest.
func (r *PostgresRepository) ListScores(ctx context.Context, userID int64, from, to string) ([]skinlog.DayScore, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT ON (log_date) log_date, overall_score
		FROM skin_logs
		WHERE user_id = $1 AND log_date BETWEEN $2 AND $3
		ORDER BY log_date, created_at DESC
	`, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []skinlog.DayScore
	for rows.Next() {
		var score skinlog.DayScore
		if err := rows.Scan(&score.Date, &score.Score); err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}
	return scores, rows.Err()
}

var _ skinlog.Repository = (*PostgresRepository)(nil)
