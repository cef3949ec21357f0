package auth

import (
	"time"

	"freelance_backend/pkg/apperrors"
)

// Session is a verified bearer token together with its lifetime.
// Persistent sessions ("remember me") may live up to SessionPolicy.PersistentTTL.
type Session struct {
	Token      string
	IssuedAt   time.Time
	ExpiresAt  time.Time
	Persistent bool
}

// SessionPolicy bounds how long a session is honoured after it was issued.
// A zero TTL disables that bound.
type SessionPolicy struct {
	EphemeralTTL    time.Duration
	PersistentTTL   time.Duration
	AllowPersistent bool
}

// MaxAge returns the lifetime the policy grants to s.
func (p SessionPolicy) MaxAge(s Session) time.Duration {
	if s.Persistent && p.AllowPersistent {
		return p.PersistentTTL
	}
	return p.EphemeralTTL
}

// Validate checks s against the token expiry and the policy at now.
func (s Session) Validate(now time.Time, policy SessionPolicy) error {
	if !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt) {
		return apperrors.ErrTokenExpired
	}

	maxAge := policy.MaxAge(s)
	if maxAge <= 0 {
		return nil
	}
	if s.IssuedAt.IsZero() {
		return apperrors.ErrInvalidToken.WithDetails("token has no issue time")
	}
	if !now.Before(s.IssuedAt.Add(maxAge)) {
		return apperrors.ErrTokenExpired
	}
	return nil
}
