// Package identity guards protected routes with session bearer tokens.
package identity

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/roxymeskell/mdmaze/service/i"
)

const (
	// ContextSessionClaims is the key used to store token claims in the Gin context.
	ContextSessionClaims = "sessionClaims"

	// ClaimSessionID names the claim holding the maze session a token was issued for.
	ClaimSessionID = "session_id"
)

func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Status(http.StatusUnauthorized) // No token found in the header.
			c.Abort()
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Status(http.StatusUnauthorized) // Malformed Authorization header.
			c.Abort()
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		c.Set(ContextSessionClaims, claims)
		c.Next()
	}
}

// SessionID returns the session_id claim of an authorized request.
func SessionID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextSessionClaims)
	if !ok {
		return "", false
	}
	claims, ok := v.(map[string]interface{})
	if !ok {
		return "", false
	}
	id, ok := claims[ClaimSessionID].(string)
	return id, ok
}
