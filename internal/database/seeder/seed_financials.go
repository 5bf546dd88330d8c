package seeder

import (
	"context"
	"fmt"

	"skillforge/internal/domain/user"
	"skillforge/internal/repository"
)

type FinancialsSeeder struct{}

func (FinancialsSeeder) Name() string { return "financials" }

var demoPaybands = []user.Payband{
	{Code: "L1", Label: "Associate Consultant", MinSalary: 60000, MaxSalary: 80000},
	{Code: "L2", Label: "Consultant", MinSalary: 80000, MaxSalary: 100000},
	{Code: "L3", Label: "Senior Consultant", MinSalary: 100000, MaxSalary: 130000},
	{Code: "L4", Label: "Principal Consultant", MinSalary: 130000, MaxSalary: 160000},
	{Code: "L5", Label: "Staff Consultant", MinSalary: 160000, MaxSalary: 200000},
	{Code: "DIR", Label: "Director", MinSalary: 180000, MaxSalary: 250000},
}

var demoRateCards = []struct {
	key string
	rc  user.RateCard
}{
	{"rc-1", user.RateCard{Name: "2024 Standard - Junior", HourlyRate: 100, Currency: "USD"}},
	{"rc-2", user.RateCard{Name: "2024 Standard - Mid", HourlyRate: 150, Currency: "USD"}},
	{"rc-3", user.RateCard{Name: "2024 Standard - Senior", HourlyRate: 200, Currency: "USD"}},
	{"rc-4", user.RateCard{Name: "2024 Standard - Principal", HourlyRate: 250, Currency: "USD"}},
	{"rc-5", user.RateCard{Name: "2024 Premium - Senior", HourlyRate: 225, Currency: "USD"}},
	{"rc-6", user.RateCard{Name: "2024 UK Standard - Senior", HourlyRate: 180, Currency: "GBP"}},
}

// user key -> payband code, rate card key
var demoFinancials = []struct {
	user, band, card string
}{
	{"user-1", "L3", "rc-3"},
	{"user-2", "L3", "rc-3"},
	{"user-3", "L4", "rc-4"},
	{"user-4", "L2", "rc-2"},
	{"user-5", "L3", "rc-3"},
	{"user-6", "L5", "rc-5"},
}

func (FinancialsSeeder) Run(ctx context.Context, repos repository.Repositories) error {
	effective := date("2024-01-01")

	for _, pb := range demoPaybands {
		pb.ID = ID("payband-" + pb.Code)
		if _, err := repos.Financials.CreatePayband(ctx, pb); err != nil {
			return fmt.Errorf("create payband %s: %w", pb.Code, err)
		}
	}
	for _, d := range demoRateCards {
		rc := d.rc
		rc.ID = ID(d.key)
		rc.EffectiveDate = effective
		if _, err := repos.Financials.CreateRateCard(ctx, rc); err != nil {
			return fmt.Errorf("create rate card %s: %w", d.key, err)
		}
	}
	for _, d := range demoFinancials {
		_, err := repos.Financials.UpsertFinancials(ctx, user.Financials{
			UserID:        ID(d.user),
			PaybandID:     idPtr("payband-" + d.band),
			RateCardID:    idPtr(d.card),
			EffectiveDate: effective,
		})
		if err != nil {
			return fmt.Errorf("financials for %s: %w", d.user, err)
		}
	}
	return nil
}
