package usecase

import (
	"travel-booking/internal/domain/user"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/jwt"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidToken = errs.New("invalid token")

// TokenValidator turns a bearer token into the acting principal for middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (shared.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (shared.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Actor{}, errs.Mark(err, ErrInvalidToken)
	}
	if claims.UserID == uuid.Nil {
		return shared.Actor{}, errs.Wrap(ErrInvalidToken, "token has no subject")
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Actor{}, errs.Mark(err, ErrInvalidToken)
	}

	return shared.Actor{UserID: claims.UserID, Role: role}, nil
}
