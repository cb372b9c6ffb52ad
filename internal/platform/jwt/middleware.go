package jwtmw

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"twitchplanner/internal/api"
)

// ContextUserID is the Gin context key under which the authenticated user's ID
// is stored.
const ContextUserID = "userID"

// Authenticator resolves a raw session token to a user ID. It is implemented
// by the auth usecase: verify token, check the server-side session, confirm
// the user still exists.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (uint, error)
}

// AuthRequired returns a Gin middleware that restricts access to requests
// carrying a valid session cookie. Missing, malformed, expired and revoked
// sessions all yield the same 401 response.
func AuthRequired(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
			return
		}

		userID, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid or expired session"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID extracts the authenticated user's ID set by AuthRequired.
func UserID(c *gin.Context) uint {
	return c.GetUint(ContextUserID)
}
