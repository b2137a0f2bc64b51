package utils

import (
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/where-app/api-go/models"
)

const (
	AccessTokenTTL  = time.Hour * 24 * 7
	RefreshTokenTTL = time.Hour * 24 * 30
)

// GenerateAccessToken issues the signed bearer token the auth middleware
// expects.
func GenerateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":      user.ID,
		"is_anonymous": user.IsAnonymous,
		"exp":          time.Now().Add(AccessTokenTTL).Unix(),
	}
	if user.Username != nil {
		claims["username"] = *user.Username
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// GenerateRefreshToken issues the long-lived token stored in the
// refresh_tokens table.
func GenerateRefreshToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(RefreshTokenTTL).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
