package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/skintrack/skintrack/pkg/errors"
)

type stubUserRepo struct {
	users map[string]User
	seq   int64
}

func (r *stubUserRepo) GetOrCreateBySubject(_ context.Context, subject, email string) (User, error) {
	if r.users == nil {
		r.users = make(map[string]User)
	}
	if user, ok := r.users[subject]; ok {
		return user, nil
	}
	r.seq++
	user := User{ID: r.seq, Subject: subject, Email: email, CreatedAt: time.Now().UTC()}
	r.users[subject] = user
	return user, nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id int64) (User, bool, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, true, nil
		}
	}
	return User{}, false, nil
}

func newAuthService(cfg Config) (Service, *stubUserRepo) {
	repo := &stubUserRepo{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(cfg, repo, logger), repo
}

func TestValidateTokenHS256(t *testing.T) {
	cfg := Config{Secret: "test-secret", TokenTTL: time.Hour}
	svc, _ := newAuthService(cfg)

	token, err := SignToken(cfg, User{Subject: "sub-1", Email: "a@example.com"}, time.Now())
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, int64(1), claims.UserID)
	require.Equal(t, "sub-1", claims.Subject)
	require.Equal(t, "a@example.com", claims.Email)
}

func TestValidateTokenResolvesSameUser(t *testing.T) {
	cfg := Config{Secret: "test-secret", TokenTTL: time.Hour}
	svc, _ := newAuthService(cfg)

	token, err := SignToken(cfg, User{Subject: "sub-1"}, time.Now())
	require.NoError(t, err)

	first, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	second, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, first.UserID, second.UserID)
}

func TestValidateTokenRejectsMissing(t *testing.T) {
	svc, _ := newAuthService(Config{Secret: "test-secret"})
	_, err := svc.ValidateToken(context.Background(), "  ")
	require.True(t, apperrors.IsCode(err, "invalid_token"))
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	cfg := Config{Secret: "test-secret", TokenTTL: time.Hour}
	svc, _ := newAuthService(cfg)

	token, err := SignToken(cfg, User{Subject: "sub-1"}, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), token)
	require.True(t, apperrors.IsCode(err, "invalid_token"))
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	signCfg := Config{Secret: "other-secret", TokenTTL: time.Hour}
	svc, _ := newAuthService(Config{Secret: "test-secret"})

	token, err := SignToken(signCfg, User{Subject: "sub-1"}, time.Now())
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), token)
	require.True(t, apperrors.IsCode(err, "invalid_token"))
}

func TestProfileNotFound(t *testing.T) {
	svc, _ := newAuthService(Config{Secret: "test-secret"})
	_, err := svc.Profile(context.Background(), 99)
	require.True(t, apperrors.IsCode(err, "user_not_found"))
}
