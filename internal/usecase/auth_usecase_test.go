package usecase

import (
	"context"
	"testing"
	"time"

	"skillforge/internal/domain/user"
	"skillforge/internal/pkg/jwt"
	ucauth "skillforge/internal/usecase/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*Auth, *Users, *jwt.HMACService) {
	t.Helper()
	repos := newRepos()
	jwtSvc := jwt.NewHMACService("access", "refresh", time.Minute, time.Hour)
	return NewAuthUsecase(repos.Users, jwtSvc, nil), NewUserUsecase(repos.Users, nil, nil), jwtSvc
}

func TestAuth_LoginAndRefresh(t *testing.T) {
	ctx := context.Background()
	auth, users, jwtSvc := newAuthFixture(t)

	created, err := users.CreateUser(ctx, CreateUserInput{Name: "Ada", Email: "Ada@Example.com", Password: "correct-horse", IsAdmin: true})
	require.NoError(t, err)
	assert.Empty(t, created.PasswordHash)

	usr, access, refresh, err := auth.Login(ctx, ucauth.LoginInput{Email: "ada@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, usr.ID)
	assert.Empty(t, usr.PasswordHash)

	claims, err := jwtSvc.ValidateToken(access)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)

	newAccess, newRefresh, err := auth.Refresh(ctx, refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, newAccess)
	assert.NotEmpty(t, newRefresh)

	_, _, err = auth.Refresh(ctx, access)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	_, _, err = auth.Refresh(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuth_LoginRejects(t *testing.T) {
	ctx := context.Background()
	auth, users, _ := newAuthFixture(t)

	u, err := users.CreateUser(ctx, CreateUserInput{Name: "Bob", Email: "bob@example.com", Password: "password123"})
	require.NoError(t, err)

	_, _, _, err = auth.Login(ctx, ucauth.LoginInput{Email: "bob@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, _, _, err = auth.Login(ctx, ucauth.LoginInput{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	inactive := user.StatusInactive
	_, err = users.UpdateUser(ctx, Actor{IsAdmin: true}, u.ID, UpdateUserInput{Status: &inactive})
	require.NoError(t, err)
	_, _, _, err = auth.Login(ctx, ucauth.LoginInput{Email: "bob@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}
