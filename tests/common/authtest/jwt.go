//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens the way the external account service does.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(h.cfg.Secret, h.cfg.Duration).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(h.cfg.Secret, -time.Minute).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateForeignToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(h.cfg.Secret+"-other", h.cfg.Duration).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateTokenFromIssuer signs with the right secret but a different iss claim.
func (h *JWTHelper) CreateTokenFromIssuer(t *testing.T, issuer string, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Duration, jwt.WithIssuer(issuer)).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) service(secret string, d time.Duration) *jwt.Service {
	return jwt.NewService(secret, d, jwt.WithIssuer(h.cfg.Issuer))
}
