package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/where-app/api-go/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing token"})
			c.Abort()
			return
		}

		c.Set(string(utils.UserContextKey), claims)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the user claims when a valid token is
// present and lets the request through anonymously otherwise. Public
// location actions (rating, commenting) accept anonymous users.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseBearer(c); ok {
			c.Set(string(utils.UserContextKey), claims)
		}
		c.Next()
	}
}

func parseBearer(c *gin.Context) (*utils.UserClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 {
		return nil, false
	}

	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(bearerToken[1], claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !parsedToken.Valid {
		return nil, false
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, false
	}

	userClaims := &utils.UserClaims{UserID: userID}
	if username, ok := claims["username"].(string); ok {
		userClaims.Username = &username
	}
	if anon, ok := claims["is_anonymous"].(bool); ok {
		userClaims.IsAnonymous = anon
	}

	return userClaims, true
}
