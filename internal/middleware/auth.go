package middleware

import (
	"placesweb/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

const (
	tokenKey         = "token"
	authenticatedKey = "authenticated"
)

// AuthGate resolves the bearer token before any page handler runs.
// The token is never inspected; its presence is the only signal.
func AuthGate(store session.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := store.Token(c)
		c.Set(tokenKey, token)
		c.Set(authenticatedKey, ok)
		c.Next()
	}
}

func Token(c *gin.Context) string {
	return c.GetString(tokenKey)
}

func IsAuthenticated(c *gin.Context) bool {
	return c.GetBool(authenticatedKey)
}
