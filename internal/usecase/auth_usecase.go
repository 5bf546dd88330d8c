package usecase

import (
	"context"
	"errors"

	"skillforge/internal/domain/user"
	"skillforge/internal/logging"
	"skillforge/internal/pkg/jwt"
	"skillforge/internal/repository"
	ucauth "skillforge/internal/usecase/auth"

	"go.uber.org/zap"
)

type AuthUsecase interface {
	Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	authSvc *ucauth.Service
	users   repository.UserRepository
	jwt     jwt.Service
	logger  *zap.Logger
}

func NewAuthUsecase(users repository.UserRepository, jwtSvc jwt.Service, logger *zap.Logger) *Auth {
	return &Auth{authSvc: ucauth.NewService(users), users: users, jwt: jwtSvc, logger: logging.OrNop(logger)}
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, string, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		if errors.Is(err, ucauth.ErrInvalidCredentials) {
			return user.User{}, "", "", ErrUnauthorized
		}
		return user.User{}, "", "", internal(u.logger, "login", err)
	}

	access, refresh, err := u.issue(usr)
	if err != nil {
		return user.User{}, "", "", err
	}
	u.logger.Info("user logged in", zap.String("user_id", usr.ID.String()))
	return usr, access, refresh, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}

	if !u.jwt.IsRefreshToken(claims) || claims.TokenType != jwt.TokenTypeRefresh {
		return "", "", ErrInvalidRefreshToken
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", "", ErrInvalidRefreshToken
		}
		return "", "", internal(u.logger, "refresh", err)
	}
	if usr.Status == user.StatusInactive {
		return "", "", ErrUnauthorized
	}

	return u.issue(usr)
}

func (u *Auth) issue(usr user.User) (string, string, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email, usr.IsAdmin)
	if err != nil {
		return "", "", internal(u.logger, "issue access token", err)
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return "", "", internal(u.logger, "issue refresh token", err)
	}
	return access, refresh, nil
}
