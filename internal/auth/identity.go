package auth

import (
	"errors"
	"strings"
	"time"

	"freelance_backend/internal/models"
	"freelance_backend/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

// Caller is the authenticated identity every lifecycle operation acts for.
type Caller struct {
	UserID string          `json:"user_id"`
	Role   models.UserRole `json:"role"`
}

func (c Caller) IsAdmin() bool {
	return c.Role == models.UserRoleAdmin
}

// Resolver turns bearer tokens into callers.
type Resolver struct {
	secret []byte
	issuer string
	policy SessionPolicy
	now    func() time.Time
}

func NewResolver(secret, issuer string, policy SessionPolicy) *Resolver {
	return &Resolver{
		secret: []byte(secret),
		issuer: issuer,
		policy: policy,
		now:    time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	cp := *r
	cp.now = now
	return &cp
}

// ParseSession verifies the token signature and builds the Session it describes.
func (r *Resolver) ParseSession(token string) (Session, *Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(r.now),
		jwt.WithIssuedAt(),
	}
	if r.issuer != "" {
		opts = append(opts, jwt.WithIssuer(r.issuer))
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return r.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Session{}, nil, apperrors.ErrTokenExpired
		}
		return Session{}, nil, apperrors.ErrInvalidToken.WithError(err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Session{}, nil, apperrors.ErrInvalidToken
	}

	session := Session{Token: token, Persistent: claims.Persistent}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, claims, nil
}

// ResolveCaller validates the session behind token and returns the caller it belongs to.
func (r *Resolver) ResolveCaller(token string) (Caller, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Caller{}, apperrors.ErrMissingToken
	}

	session, claims, err := r.ParseSession(token)
	if err != nil {
		return Caller{}, err
	}
	if err := session.Validate(r.now(), r.policy); err != nil {
		return Caller{}, err
	}

	role, err := ParseRole(claims.Role)
	if err != nil {
		return Caller{}, apperrors.ErrInvalidToken.WithDetails("unknown role")
	}
	userID := claims.SubjectID()
	if userID == "" {
		return Caller{}, apperrors.ErrInvalidToken.WithDetails("token has no subject")
	}

	return Caller{UserID: userID, Role: role}, nil
}
