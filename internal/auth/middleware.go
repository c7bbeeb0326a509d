package auth

import (
	"errors"
	"net/http"
	"strings"

	"idea-auction/utils"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey   = "auth.user_id"
	userNameKey = "auth.user_name"
)

// Middleware verifies the bearer token and injects the caller's opaque
// subject identifier and display name into the request context. Handlers read
// identity only through Identity, never from the request body.
func Middleware(verifier JWT) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := bearerToken(c.GetHeader("Authorization"))
		if tok == "" {
			utils.JSONError(c, http.StatusUnauthorized, errors.New("missing bearer token"), "missing bearer token")
			c.Abort()
			return
		}
		claims, err := verifier.Verify(tok)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, errors.New("invalid token"), "invalid token")
			utils.Warn("auth: token rejected", map[string]any{"error": err.Error()})
			c.Abort()
			return
		}
		c.Set(userIDKey, claims.Subject)
		c.Set(userNameKey, claims.Name)
		c.Next()
	}
}

// Identity returns the authenticated caller's subject and display name.
func Identity(c *gin.Context) (userID, userName string, ok bool) {
	userID = c.GetString(userIDKey)
	userName = c.GetString(userNameKey)
	return userID, userName, userID != ""
}

func bearerToken(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	parts := strings.SplitN(v, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
