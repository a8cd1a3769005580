package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/01moynul/bizdirectory-golang/internal/auth"
)

// SessionKey is the gin context key holding the admin auth.Session.
const SessionKey = "session"

// Authenticator is the part of auth.Authenticator the middleware needs.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (auth.Session, error)
}

// AdminMiddleware guards the admin routes. Requests without a valid, unrevoked
// Bearer session are answered 401 with a pointer to the login page.
func AdminMiddleware(a Authenticator, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. --- Get Authorization Header ---
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, "Invalid token format (must be Bearer)")
			return
		}

		// 2. --- Validate Session ---
		session, err := a.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			if !errors.Is(err, auth.ErrInvalidToken) && !errors.Is(err, auth.ErrSessionRevoked) {
				logger.Error("Session check failed", zap.Error(err))
			}
			unauthorized(c, "Invalid or expired session")
			return
		}

		// 3. --- Success ---
		c.Set(SessionKey, session)
		c.Next()
	}
}

// CurrentSession returns the session set by AdminMiddleware.
func CurrentSession(c *gin.Context) (auth.Session, bool) {
	v, ok := c.Get(SessionKey)
	if !ok {
		return auth.Session{}, false
	}
	session, ok := v.(auth.Session)
	return session, ok
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg, "redirect": "/login"})
}
