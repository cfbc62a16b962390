package middleware

import (
	"net/http"
	"strings"

	"hotel-desk/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const APIKeyHeader = "X-API-Key"

// HashAPIKey returns the bcrypt hash RequireAPIKey checks against.
func HashAPIKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// RequireAPIKey rejects requests whose X-API-Key does not match hash. An
// empty hash lets everything through.
func RequireAPIKey(hash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if hash == "" {
			c.Next()
			return
		}
		key := strings.TrimSpace(c.GetHeader(APIKeyHeader))
		if key == "" || bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or missing API key")
			c.Abort()
			return
		}
		c.Next()
	}
}
