package identity

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aulamaze/aulamaze-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextUserClaims is the key used to store user claims in the Gin context.
	ContextUserClaims = "userClaims"
)

// Authorize validates the bearer token on incoming requests and attaches
// its claims to the Gin context.
func Authorize(ts i.Tokenizer) gin.HandlerFunc {
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

		// Validate the token.
		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		// Attach user claims to the request context for further use.
		c.Set(ContextUserClaims, claims)
		c.Next()
	}
}

// CurrentUserID extracts the authenticated user's ID from the context
// claims set by Authorize.
func CurrentUserID(c *gin.Context) (uuid.UUID, error) {
	raw, ok := c.Get(ContextUserClaims)
	if !ok {
		return uuid.Nil, errors.New("no claims in context")
	}
	claims, ok := raw.(map[string]interface{})
	if !ok {
		return uuid.Nil, errors.New("malformed claims in context")
	}
	idStr, ok := claims["userID"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing userID claim")
	}
	return uuid.Parse(idStr)
}
