package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by the bearer tokens of the identity service.
type Claims struct {
	UserID     string `json:"user_id"`
	Role       string `json:"role"`
	Persistent bool   `json:"persistent,omitempty"`
	jwt.RegisteredClaims
}

// SubjectID returns the user id, falling back to the registered "sub" claim.
func (c *Claims) SubjectID() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.RegisteredClaims.Subject
}
