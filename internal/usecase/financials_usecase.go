package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"skillforge/internal/domain/user"
	"skillforge/internal/logging"
	"skillforge/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FinancialsInput struct {
	PaybandID          *uuid.UUID
	RateCardID         *uuid.UUID
	CustomRate         *float64
	CustomRateCurrency string
	EffectiveDate      time.Time
}

type FinancialsUsecase interface {
	GetPaybands(ctx context.Context) ([]user.Payband, error)
	GetRateCards(ctx context.Context) ([]user.RateCard, error)
	GetUserFinancials(ctx context.Context, userID uuid.UUID) (user.Financials, error)
	UpdateUserFinancials(ctx context.Context, userID uuid.UUID, in FinancialsInput) (user.Financials, error)
}

type Financials struct {
	repo   repository.FinancialsRepository
	users  repository.UserRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewFinancialsUsecase(repo repository.FinancialsRepository, users repository.UserRepository, logger *zap.Logger) *Financials {
	return &Financials{repo: repo, users: users, logger: logging.OrNop(logger), now: time.Now}
}

func (f *Financials) GetPaybands(ctx context.Context) ([]user.Payband, error) {
	list, err := f.repo.ListPaybands(ctx)
	if err != nil {
		return nil, internal(f.logger, "list paybands", err)
	}
	return list, nil
}

func (f *Financials) GetRateCards(ctx context.Context) ([]user.RateCard, error) {
	list, err := f.repo.ListRateCards(ctx)
	if err != nil {
		return nil, internal(f.logger, "list rate cards", err)
	}
	return list, nil
}

func (f *Financials) GetUserFinancials(ctx context.Context, userID uuid.UUID) (user.Financials, error) {
	if err := f.requireUser(ctx, userID); err != nil {
		return user.Financials{}, err
	}
	fin, err := f.repo.GetFinancials(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.Financials{}, ErrFinancialsNotFound
		}
		return user.Financials{}, internal(f.logger, "get financials", err)
	}
	return fin, nil
}

// UpdateUserFinancials upserts the user's record. Referenced paybands and
// rate cards must exist; a zero effective date means today.
func (f *Financials) UpdateUserFinancials(ctx context.Context, userID uuid.UUID, in FinancialsInput) (user.Financials, error) {
	if err := f.requireUser(ctx, userID); err != nil {
		return user.Financials{}, err
	}
	if in.CustomRate != nil && *in.CustomRate < 0 {
		return user.Financials{}, invalid("custom_rate must not be negative")
	}
	currency := strings.ToUpper(strings.TrimSpace(in.CustomRateCurrency))
	if in.CustomRate != nil && currency == "" {
		return user.Financials{}, invalid("custom_rate_currency is required with custom_rate")
	}

	if in.PaybandID != nil {
		bands, err := f.GetPaybands(ctx)
		if err != nil {
			return user.Financials{}, err
		}
		if !slices.ContainsFunc(bands, func(b user.Payband) bool { return b.ID == *in.PaybandID }) {
			return user.Financials{}, ErrPaybandNotFound
		}
	}
	if in.RateCardID != nil {
		cards, err := f.GetRateCards(ctx)
		if err != nil {
			return user.Financials{}, err
		}
		if !slices.ContainsFunc(cards, func(c user.RateCard) bool { return c.ID == *in.RateCardID }) {
			return user.Financials{}, ErrRateCardNotFound
		}
	}

	effective := in.EffectiveDate
	if effective.IsZero() {
		effective = f.now().UTC().Truncate(24 * time.Hour)
	}

	saved, err := f.repo.UpsertFinancials(ctx, user.Financials{
		UserID:             userID,
		PaybandID:          in.PaybandID,
		RateCardID:         in.RateCardID,
		CustomRate:         in.CustomRate,
		CustomRateCurrency: currency,
		EffectiveDate:      effective,
	})
	if err != nil {
		return user.Financials{}, internal(f.logger, "upsert financials", err)
	}
	f.logger.Info("financials updated", zap.String("user_id", userID.String()))
	return saved, nil
}

func (f *Financials) requireUser(ctx context.Context, id uuid.UUID) error {
	if _, err := f.users.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return internal(f.logger, "get user", err)
	}
	return nil
}
