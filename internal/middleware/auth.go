package middleware

import (
	"errors"
	"strings"

	"freelancehub_backend/internal/auth"
	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/pkg/apperrors"
	"freelancehub_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// Auth validates the Bearer token and stores the caller's identity in
// the gin context and the request context.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "Authorization header must be 'Bearer <token>'")
			return
		}

		claims, err := auth.ParseToken(parts[1])
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				abortUnauthorized(c, "Token expired")
				return
			}
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(string(contextkeys.UserIDKey), claims.UserID)
		c.Set(string(contextkeys.RoleKey), claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole rejects callers whose role is not in the allowed set.
// Must run after Auth.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, _ := c.Get(string(contextkeys.RoleKey))
		role, ok := raw.(models.UserRole)
		if !ok {
			abortUnauthorized(c, "Authentication required")
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		apperrors.HandleError(c, apperrors.NewForbiddenError("Insufficient permissions"))
		c.Abort()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	apperrors.HandleError(c, apperrors.NewUnauthorizedError(message))
	c.Abort()
}
