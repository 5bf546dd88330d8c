package usecase

import (
	"context"
	"testing"
	"time"

	"skillforge/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinancials_Upsert(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	fin := NewFinancialsUsecase(repos.Financials, repos.Users, nil)
	fin.now = func() time.Time { return time.Date(2024, 2, 3, 15, 0, 0, 0, time.UTC) }
	u := seedUser(t, repos, "Logan Howlett")

	band, err := repos.Financials.CreatePayband(ctx, user.Payband{ID: uuid.New(), Code: "B3", Label: "Senior", MinSalary: 100000, MaxSalary: 140000})
	require.NoError(t, err)

	_, err = fin.GetUserFinancials(ctx, u.ID)
	assert.ErrorIs(t, err, ErrFinancialsNotFound)

	missing := uuid.New()
	_, err = fin.UpdateUserFinancials(ctx, u.ID, FinancialsInput{PaybandID: &missing})
	assert.ErrorIs(t, err, ErrPaybandNotFound)
	_, err = fin.UpdateUserFinancials(ctx, u.ID, FinancialsInput{RateCardID: &missing})
	assert.ErrorIs(t, err, ErrRateCardNotFound)

	rate := 150.0
	_, err = fin.UpdateUserFinancials(ctx, u.ID, FinancialsInput{CustomRate: &rate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	saved, err := fin.UpdateUserFinancials(ctx, u.ID, FinancialsInput{PaybandID: &band.ID, CustomRate: &rate, CustomRateCurrency: "usd"})
	require.NoError(t, err)
	assert.Equal(t, "USD", saved.CustomRateCurrency)
	assert.Equal(t, time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC), saved.EffectiveDate)

	got, err := fin.GetUserFinancials(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PaybandID)
	assert.Equal(t, band.ID, *got.PaybandID)

	saved, err = fin.UpdateUserFinancials(ctx, u.ID, FinancialsInput{})
	require.NoError(t, err)
	assert.Nil(t, saved.PaybandID)

	_, err = fin.UpdateUserFinancials(ctx, uuid.New(), FinancialsInput{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
