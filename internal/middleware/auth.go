package middleware

import (
	"strings"

	"freelance_backend/internal/auth"
	"freelance_backend/internal/logger"
	"freelance_backend/internal/models"
	"freelance_backend/pkg/apperrors"
	"freelance_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey = "userID"
	roleKey   = "role"
)

// AuthMiddleware resolves the bearer token into an auth.Caller and stores it on the context.
func AuthMiddleware(resolver *auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			apperrors.HandleError(c, apperrors.ErrMissingToken)
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.ErrInvalidToken.WithDetails("authorization header must use the Bearer scheme"))
			return
		}

		caller, err := resolver.ResolveCaller(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "Authentication failed",
				"path", c.Request.URL.Path,
				"ip", c.ClientIP(),
				"error", err.Error(),
			)
			apperrors.HandleError(c, err)
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), caller.UserID)
		ctx = logger.WithUserRole(ctx, string(caller.Role))
		c.Request = c.Request.WithContext(ctx)

		c.Set(string(contextkeys.CallerContextKey), caller)
		c.Set(userIDKey, caller.UserID)
		c.Set(roleKey, caller.Role)
		c.Next()
	}
}

// RequireRoles rejects callers whose role is not listed with ROLE_VIOLATION.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
			return
		}

		if !roleSet[role] {
			apperrors.HandleError(c, apperrors.ErrRoleViolation.WithDetails(map[string]string{
				"role": string(role),
			}))
			return
		}

		c.Next()
	}
}

// GetUserID returns the authenticated user id or "".
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(userIDKey)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}

func GetUserRole(c *gin.Context) (models.UserRole, bool) {
	roleVal, exists := c.Get(roleKey)
	if !exists {
		return "", false
	}
	role, ok := roleVal.(models.UserRole)
	return role, ok
}
