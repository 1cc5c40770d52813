package assistantrepo

import (
	"context"
	"math"
	"sync"

	"github.com/skintrack/skintrack/internal/domain/assistant"
)

type memoryQuestion struct {
	record    assistant.QuestionRecord
	embedding []float32
}

// MemoryRepository is an in-memory QuestionRepository for tests/dev.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64

	records map[int64]memoryQuestion
	byText  map[string]int64
}

// NewMemoryRepository constructs a repo backed by memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextID:  1,
		records: make(map[int64]memoryQuestion),
		byText:  make(map[string]int64),
	}
}

// FindExact implements assistant.QuestionRepository.
func (r *MemoryRepository) FindExact(_ context.Context, question string) (assistant.QuestionRecord, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byText[question]
	if !ok {
		return assistant.QuestionRecord{}, false, nil
	}
	return r.records[id].record, true, nil
}

// FindNearest implements assistant.QuestionRepository.
func (r *MemoryRepository) FindNearest(_ context.Context, embedding []float32) (assistant.SimilarityMatch, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var (
		best   assistant.SimilarityMatch
		hasAny bool
	)
	for _, candidate := range r.records {
		dist := euclideanDistance(embedding, candidate.embedding)
		if !hasAny || dist < best.Distance {
			hasAny = true
			best = assistant.SimilarityMatch{Question: candidate.record, Distance: dist}
		}
	}
	return best, hasAny, nil
}

// InsertQuestion implements assistant.QuestionRepository.
func (r *MemoryRepository) InsertQuestion(_ context.Context, question string, embedding []float32) (assistant.QuestionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++

	record := assistant.QuestionRecord{ID: id, QuestionText: question}
	r.records[id] = memoryQuestion{
		record:    record,
		embedding: append([]float32(nil), embedding...),
	}
	r.byText[question] = id
	return record, nil
}

func euclideanDistance(a, b []float32) float64 {
	length := len(a)
	if len(b) < length {
		length = len(b)
	}
	var sum float64
	for i := 0; i < length; i++ {
		diff := float64(a[i] - b[i])
		sum += diff * diff
	}
	return math.Sqrt(sum)
}

var _ assistant.QuestionRepository = (*MemoryRepository)(nil)
