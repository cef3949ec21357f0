package contextkeys

// Typed key so values cannot collide with other packages.
type contextKey string

const (
	// DBContextKey holds the *gorm.DB (or an open transaction) for the request.
	DBContextKey = contextKey("db")
	// CallerContextKey holds the auth.Caller resolved from the bearer token.
	CallerContextKey = contextKey("caller")
)
