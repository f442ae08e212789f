//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func fixedNow(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestService_RoundTrip(t *testing.T) {
	issuedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := jwt.NewService(secret, time.Hour, jwt.WithIssuer("travel-accounts"), jwt.WithTimeFunc(fixedNow(issuedAt)))
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, user.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "travel-accounts", claims.Issuer)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestService_ValidateToken(t *testing.T) {
	issuedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	sign := func(t *testing.T, s *jwt.Service) string {
		t.Helper()
		token, err := s.GenerateToken(userID, user.RoleCustomer)
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name      string
		token     func(t *testing.T) string
		validator *jwt.Service
		wantErr   error
	}{
		{
			name:      "expired beyond leeway",
			token:     func(t *testing.T) string { return sign(t, jwt.NewService(secret, time.Minute, jwt.WithTimeFunc(fixedNow(issuedAt)))) },
			validator: jwt.NewService(secret, time.Minute, jwt.WithLeeway(30*time.Second), jwt.WithTimeFunc(fixedNow(issuedAt.Add(2*time.Minute)))),
			wantErr:   jwt.ErrExpiredToken,
		},
		{
			name:      "expired within leeway",
			token:     func(t *testing.T) string { return sign(t, jwt.NewService(secret, time.Minute, jwt.WithTimeFunc(fixedNow(issuedAt)))) },
			validator: jwt.NewService(secret, time.Minute, jwt.WithLeeway(30*time.Second), jwt.WithTimeFunc(fixedNow(issuedAt.Add(70*time.Second)))),
		},
		{
			name:      "wrong secret",
			token:     func(t *testing.T) string { return sign(t, jwt.NewService(secret+"x", time.Hour)) },
			validator: jwt.NewService(secret, time.Hour),
			wantErr:   jwt.ErrInvalidToken,
		},
		{
			name:      "wrong issuer",
			token:     func(t *testing.T) string { return sign(t, jwt.NewService(secret, time.Hour, jwt.WithIssuer("other"))) },
			validator: jwt.NewService(secret, time.Hour, jwt.WithIssuer("travel-accounts")),
			wantErr:   jwt.ErrInvalidToken,
		},
		{
			name: "no expiry",
			token: func(t *testing.T) string {
				raw := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{UserID: userID, Role: "customer"})
				s, err := raw.SignedString([]byte(secret))
				require.NoError(t, err)
				return s
			},
			validator: jwt.NewService(secret, time.Hour),
			wantErr:   jwt.ErrInvalidToken,
		},
		{
			name: "other signing method",
			token: func(t *testing.T) string {
				raw := gojwt.NewWithClaims(gojwt.SigningMethodHS512, jwt.Claims{
					UserID:           userID,
					RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour))},
				})
				s, err := raw.SignedString([]byte(secret))
				require.NoError(t, err)
				return s
			},
			validator: jwt.NewService(secret, time.Hour),
			wantErr:   jwt.ErrInvalidToken,
		},
		{
			name:      "garbage",
			token:     func(*testing.T) string { return "not-a-jwt" },
			validator: jwt.NewService(secret, time.Hour),
			wantErr:   jwt.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tt.validator.ValidateToken(tt.token(t))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
		})
	}
}
