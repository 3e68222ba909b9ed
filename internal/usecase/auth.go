package usecase

import (
	"context"

	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/jwt"
	"stayhub/internal/pkg/password"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type LoginResult struct {
	Token string
	User  *queries.AuthorizedUserView
}

type AuthUseCase interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
	Me(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error)
}

type authUseCaseImpl struct {
	userRepo UserRepository
	jwtSvc   *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtSvc *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	snap, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !snap.IsActive {
		return nil, errs.ErrInvalidCredentials
	}

	if err := password.Verify(snap.PasswordHash, rawPassword); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	token, err := a.jwtSvc.GenerateToken(snap.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{
		Token: token,
		User: &queries.AuthorizedUserView{
			ID:       snap.ID,
			Email:    snap.Email,
			Role:     snap.Role,
			IsActive: snap.IsActive,
		},
	}, nil
}

func (a *authUseCaseImpl) Me(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	snap, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &queries.AuthorizedUserView{
		ID:       snap.ID,
		Email:    snap.Email,
		Role:     snap.Role,
		IsActive: snap.IsActive,
	}, nil
}
