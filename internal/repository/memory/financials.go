package memory

import (
	"context"
	"sync"

	"skillforge/internal/domain/user"
	"skillforge/internal/repository"

	"github.com/google/uuid"
)

type FinancialsRepository struct {
	mu         sync.RWMutex
	paybands   []user.Payband
	rateCards  []user.RateCard
	financials map[uuid.UUID]user.Financials
}

func NewFinancialsRepository() *FinancialsRepository {
	return &FinancialsRepository{financials: map[uuid.UUID]user.Financials{}}
}

func (r *FinancialsRepository) ListPaybands(_ context.Context) ([]user.Payband, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSlice(r.paybands), nil
}

func (r *FinancialsRepository) CreatePayband(_ context.Context, p user.Payband) (user.Payband, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.paybands {
		if existing.ID == p.ID || existing.Code == p.Code {
			return user.Payband{}, repository.ErrDuplicate
		}
	}
	r.paybands = append(r.paybands, p)
	return p, nil
}

func (r *FinancialsRepository) ListRateCards(_ context.Context) ([]user.RateCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSlice(r.rateCards), nil
}

func (r *FinancialsRepository) CreateRateCard(_ context.Context, rc user.RateCard) (user.RateCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.rateCards {
		if existing.ID == rc.ID {
			return user.RateCard{}, repository.ErrDuplicate
		}
	}
	r.rateCards = append(r.rateCards, rc)
	return rc, nil
}

func (r *FinancialsRepository) GetFinancials(_ context.Context, userID uuid.UUID) (user.Financials, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.financials[userID]
	if !ok {
		return user.Financials{}, repository.ErrNotFound
	}
	return f, nil
}

func (r *FinancialsRepository) UpsertFinancials(_ context.Context, f user.Financials) (user.Financials, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.financials[f.UserID] = f
	return f, nil
}
