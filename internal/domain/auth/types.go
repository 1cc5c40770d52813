package auth

import "time"

// Config drives token verification.
type Config struct {
	// Secret signs and verifies first-party HS256 tokens.
	Secret string
	// TokenTTL bounds the lifetime of issued tokens.
	TokenTTL time.Duration
	// OIDC switches verification to an external identity provider when set.
	OIDC OIDCConfig
}

// OIDCConfig points at an external OpenID Connect issuer.
type OIDCConfig struct {
	Issuer   string
	Audience string
}

// Enabled reports whether external verification is configured.
func (c OIDCConfig) Enabled() bool {
	return c.Issuer != ""
}

// User represents a persisted account.
type User struct {
	ID        int64     `json:"id"`
	Subject   string    `json:"-"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Claims are extracted from a verified token.
type Claims struct {
	UserID    int64
	Subject   string
	Email     string
	ExpiresAt time.Time
}
