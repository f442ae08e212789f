package bootstrap

import (
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

const minSecretLength = 16

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService refuses short HMAC secrets so a placeholder value cannot reach production.
func NewJWTService(cfg config.JWTConfig) (*jwt.Service, error) {
	if len(cfg.Secret) < minSecretLength {
		return nil, errs.Newf("JWT_SECRET must be at least %d bytes", minSecretLength)
	}
	if cfg.Duration <= 0 {
		return nil, errs.New("JWT_DURATION must be positive")
	}
	return jwt.NewService(cfg.Secret, cfg.Duration,
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithLeeway(cfg.Leeway),
	), nil
}
