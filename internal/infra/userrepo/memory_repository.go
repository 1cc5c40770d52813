package userrepo

import (
	"context"
	"sync"
	"time"

	"github.com/skintrack/skintrack/internal/domain/auth"
)

// MemoryRepository provides an in-memory user store for tests/dev.
type MemoryRepository struct {
	mu           sync.RWMutex
	users        map[int64]auth.User
	subjectIndex map[string]int64
	seq          int64
}

// NewMemoryRepository constructs a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:        make(map[int64]auth.User),
		subjectIndex: make(map[string]int64),
	}
}

// GetOrCreateBySubject resolves or creates the account for a token subject.
func (r *MemoryRepository) GetOrCreateBySubject(_ context.Context, subject, email string) (auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.subjectIndex[subject]; ok {
		user := r.users[id]
		if email != "" && user.Email != email {
			user.Email = email
			r.users[id] = user
		}
		return user, nil
	}
	r.seq++
	user := auth.User{
		ID:        r.seq,
		Subject:   subject,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	r.users[user.ID] = user
	r.subjectIndex[subject] = user.ID
	return user, nil
}

// GetByID fetches by ID.
func (r *MemoryRepository) GetByID(_ context.Context, id int64) (auth.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	return user, ok, nil
}

var _ auth.Repository = (*MemoryRepository)(nil)
