package contextkeys

type ContextKey string

const (
	// UserIDKey is set by the auth middleware after token validation.
	UserIDKey ContextKey = "userID"
	// RoleKey is set by the auth middleware alongside UserIDKey.
	RoleKey ContextKey = "role"
	// RequestIDKey is set by the request logging middleware.
	RequestIDKey ContextKey = "requestID"
)
