package assistantrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/skintrack/skintrack/internal/domain/assistant"
)

// PostgresRepository implements assistant.QuestionRepository using pgx
// and pgvector nearest-neighbour lookups.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// FindExact fetches by literal question text.
func (r *PostgresRepository) FindExact(ctx context.Context, question string) (assistant.QuestionRecord, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, question_text
		FROM assistant_questions
		WHERE question_text = $1
		LIMIT 1
	`, question)
	if err != nil {
		return assistant.QuestionRecord{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return assistant.QuestionRecord{}, false, rows.Err()
	}
	var record assistant.QuestionRecord
	if err := rows.Scan(&record.ID, &record.QuestionText); err != nil {
		return assistant.QuestionRecord{}, false, err
	}
	return record, true, rows.Err()
}

// FindNearest returns the closest pgvector match.
func (r *PostgresRepository) FindNearest(ctx context.Context, embedding []float32) (assistant.SimilarityMatch, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, question_text, embedding <-> $1 AS distance
		FROM assistant_questions
		ORDER BY embedding <-> $1
		LIMIT 1
	`, pgvector.NewVector(embedding))
	if err != nil {
		return assistant.SimilarityMatch{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return assistant.SimilarityMatch{}, false, rows.Err()
	}
	var match assistant.SimilarityMatch
	if err := rows.Scan(&match.Question.ID, &match.Question.QuestionText, &match.Distance); err != nil {
		return assistant.SimilarityMatch{}, false, err
	}
	return match, true, rows.Err()
}

// InsertQuestion inserts a new question row with its embedding.
func (r *PostgresRepository) InsertQuestion(ctx context.Context, question string, embedding []float32) (assistant.QuestionRecord, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO assistant_questions (question_text, embedding)
		VALUES ($1, $2)
		RETURNING id, question_text
	`, question, pgvector.NewVector(embedding))
	var record assistant.QuestionRecord
	if err := row.Scan(&record.ID, &record.QuestionText); err != nil {
		return assistant.QuestionRecord{}, err
	}
	return record, nil
}

var _ assistant.QuestionRepository = (*PostgresRepository)(nil)
