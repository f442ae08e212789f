package middleware

import (
	"log/slog"
	"net/http"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/pkg/cookie"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase"
	"travel-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
	ctxClaimsKey   = "jwt_claims"
)

var errAccessTokenRequired = errs.New("access token required")

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts the access token cookie or an Authorization bearer header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.RequestToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errAccessTokenRequired, "Access token required", nil)
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		setActor(c, actor)
		c.Next()
	}
}

func setActor(c *gin.Context, actor shared.Actor) {
	c.Set(ctxUserIDKey, actor.UserID)
	c.Set(ctxUserRoleKey, actor.Role)
	c.Set(ctxClaimsKey, map[string]any{
		"user_id": actor.UserID.String(),
		"role":    actor.Role.String(),
	})
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}

// GetActor returns the authenticated caller set by RequireAuth.
func GetActor(c *gin.Context) (shared.Actor, bool) {
	userID, ok := GetUserID(c)
	if !ok {
		return shared.Actor{}, false
	}
	role, ok := GetUserRole(c)
	if !ok {
		return shared.Actor{}, false
	}
	return shared.Actor{UserID: userID, Role: role}, true
}
