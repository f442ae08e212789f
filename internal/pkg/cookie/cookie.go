package cookie

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

// RequestToken prefers the access token cookie and falls back to the bearer header.
func RequestToken(c *gin.Context) string {
	if token := GetAccessToken(c); token != "" {
		return token
	}
	return BearerToken(c)
}
