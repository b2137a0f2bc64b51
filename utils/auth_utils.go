package utils

import (
	"github.com/gin-gonic/gin"
)

type UserClaims struct {
	UserID      string  `json:"user_id"`
	Username    *string `json:"username"`
	IsAnonymous bool    `json:"is_anonymous"`
}

type contextKey string

const UserContextKey contextKey = "user"

// GetUser returns the authenticated user's claims, or nil when the request
// carries no session (possible on routes using OptionalAuthMiddleware).
func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if userClaims, ok := user.(*UserClaims); ok {
		return userClaims
	}
	return nil
}
