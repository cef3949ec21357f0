package auth

import (
	"errors"
	"strings"

	"freelance_backend/internal/models"
)

var ErrInvalidRole = errors.New("invalid role")

// ParseRole accepts a role name in any case and returns the closed enum value.
func ParseRole(role string) (models.UserRole, error) {
	r := models.UserRole(strings.ToUpper(strings.TrimSpace(role)))
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

// HasRole reports whether the caller has one of roles.
func HasRole(caller Caller, roles ...models.UserRole) bool {
	for _, r := range roles {
		if caller.Role == r {
			return true
		}
	}
	return false
}
