package usecase

import (
	"stayhub/internal/domain/user"
	"stayhub/internal/pkg/jwt"

	"github.com/google/uuid"
)

type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, user.Role, error)
}

type jwtTokenValidator struct {
	jwtSvc *jwt.Service
}

func NewTokenValidator(jwtSvc *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtSvc: jwtSvc}
}

func (v *jwtTokenValidator) ValidateToken(token string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwtSvc.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}

	return claims.UserID, role, nil
}
