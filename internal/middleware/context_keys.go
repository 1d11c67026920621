package middleware

// contextKey is a private key type to avoid collisions in context values.
type contextKey string

const (
	loggerKey = contextKey("logger")
	userIDKey = contextKey("userID")
)
