package auth

import "context"

// Repository abstracts user persistence.
type Repository interface {
	GetOrCreateBySubject(ctx context.Context, subject, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, bool, error)
}
