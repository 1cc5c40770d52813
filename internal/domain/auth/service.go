package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/skintrack/skintrack/pkg/errors"
)

// Service verifies bearer tokens and resolves the local user account.
type Service interface {
	ValidateToken(ctx context.Context, token string) (Claims, error)
	Profile(ctx context.Context, userID int64) (User, error)
}

type service struct {
	cfg    Config
	repo   Repository
	logger *slog.Logger

	mu       sync.Mutex
	verifier *oidc.IDTokenVerifier
}

// NewService constructs a Service instance.
func NewService(cfg Config, repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		cfg:    cfg,
		repo:   repo,
		logger: logger.With("component", "auth.service"),
	}
}

func (s *service) ValidateToken(ctx context.Context, token string) (Claims, error) {
	if strings.TrimSpace(token) == "" {
		return Claims{}, apperrors.Wrap("invalid_token", "token missing", nil)
	}
	if s.cfg.OIDC.Enabled() {
		return s.validateOIDC(ctx, token)
	}
	return s.validateHS256(ctx, token)
}

func (s *service) Profile(ctx context.Context, userID int64) (User, error) {
	user, found, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return User{}, apperrors.Wrap("auth_error", "failed to load profile", err)
	}
	if !found {
		return User{}, apperrors.Wrap("user_not_found", "user not found", nil)
	}
	return user, nil
}

func (s *service) validateHS256(ctx context.Context, token string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Claims{}, apperrors.Wrap("invalid_token", "token validation failed", err)
	}
	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return Claims{}, apperrors.Wrap("invalid_token", "token invalid", nil)
	}
	if claims.ExpiresAt == nil {
		return Claims{}, apperrors.Wrap("invalid_token", "token missing expiry", nil)
	}
	if claims.ExpiresAt.Time.Before(time.Now()) {
		return Claims{}, apperrors.Wrap("invalid_token", "token expired", nil)
	}
	return s.resolveUser(ctx, claims.Subject, claims.Email, claims.ExpiresAt.Time)
}

func (s *service) validateOIDC(ctx context.Context, token string) (Claims, error) {
	verifier, err := s.oidcVerifier(ctx)
	if err != nil {
		return Claims{}, apperrors.Wrap("auth_error", "failed to initialize oidc provider", err)
	}
	idToken, err := verifier.Verify(ctx, token)
	if err != nil {
		return Claims{}, apperrors.Wrap("invalid_token", "failed to verify id token", err)
	}
	var payload struct {
		Email string `json:"email"`
	}
	if err := idToken.Claims(&payload); err != nil {
		return Claims{}, apperrors.Wrap("invalid_token", "failed to parse id token claims", err)
	}
	return s.resolveUser(ctx, idToken.Subject, payload.Email, idToken.Expiry)
}

// oidcVerifier lazily initializes the issuer verifier so the service starts
// even when the provider is briefly unreachable.
func (s *service) oidcVerifier(ctx context.Context) (*oidc.IDTokenVerifier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.verifier != nil {
		return s.verifier, nil
	}
	provider, err := oidc.NewProvider(ctx, s.cfg.OIDC.Issuer)
	if err != nil {
		return nil, err
	}
	s.verifier = provider.Verifier(&oidc.Config{ClientID: s.cfg.OIDC.Audience})
	return s.verifier, nil
}

func (s *service) resolveUser(ctx context.Context, subject, email string, expiresAt time.Time) (Claims, error) {
	if subject == "" {
		return Claims{}, apperrors.Wrap("invalid_token", "token missing subject", nil)
	}
	user, err := s.repo.GetOrCreateBySubject(ctx, subject, email)
	if err != nil {
		return Claims{}, apperrors.Wrap("auth_error", "failed to resolve user", err)
	}
	return Claims{
		UserID:    user.ID,
		Subject:   subject,
		Email:     user.Email,
		ExpiresAt: expiresAt,
	}, nil
}

type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SignToken issues an HS256 token for a user. Used by tooling and tests.
func SignToken(cfg Config, user User, now time.Time) (string, error) {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	claims := tokenClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", apperrors.Wrap("auth_error", "failed to sign token", err)
	}
	return signed, nil
}
