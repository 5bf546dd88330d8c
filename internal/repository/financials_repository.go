package repository

import (
	"context"

	"skillforge/internal/database"
	"skillforge/internal/domain/user"

	"github.com/google/uuid"
)

type PostgresFinancialsRepository struct {
	db database.DB
}

func NewPostgresFinancialsRepository(db database.DB) *PostgresFinancialsRepository {
	return &PostgresFinancialsRepository{db: db}
}

func (r *PostgresFinancialsRepository) ListPaybands(ctx context.Context) ([]user.Payband, error) {
	rows, err := r.db.Query(ctx, `SELECT id, code, label, min_salary, max_salary FROM paybands ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.Payband, 0)
	for rows.Next() {
		var p user.Payband
		if err := rows.Scan(&p.ID, &p.Code, &p.Label, &p.MinSalary, &p.MaxSalary); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresFinancialsRepository) CreatePayband(ctx context.Context, p user.Payband) (user.Payband, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO paybands (id, code, label, min_salary, max_salary) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Code, p.Label, p.MinSalary, p.MaxSalary,
	)
	if err != nil {
		return user.Payband{}, mapWriteErr(err)
	}
	return p, nil
}

func (r *PostgresFinancialsRepository) ListRateCards(ctx context.Context) ([]user.RateCard, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, hourly_rate, currency, effective_date FROM rate_cards ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.RateCard, 0)
	for rows.Next() {
		var rc user.RateCard
		if err := rows.Scan(&rc.ID, &rc.Name, &rc.HourlyRate, &rc.Currency, &rc.EffectiveDate); err != nil {
			return nil, err
		}
		out = append(out, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresFinancialsRepository) CreateRateCard(ctx context.Context, rc user.RateCard) (user.RateCard, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO rate_cards (id, name, hourly_rate, currency, effective_date) VALUES ($1, $2, $3, $4, $5)`,
		rc.ID, rc.Name, rc.HourlyRate, rc.Currency, rc.EffectiveDate,
	)
	if err != nil {
		return user.RateCard{}, mapWriteErr(err)
	}
	return rc, nil
}

func (r *PostgresFinancialsRepository) GetFinancials(ctx context.Context, userID uuid.UUID) (user.Financials, error) {
	var (
		f        user.Financials
		payband  uuid.NullUUID
		rateCard uuid.NullUUID
	)
	err := r.db.QueryRow(ctx,
		`SELECT user_id, payband_id, rate_card_id, custom_rate, custom_rate_currency, effective_date
		 FROM user_financials WHERE user_id = $1`,
		userID,
	).Scan(&f.UserID, &payband, &rateCard, &f.CustomRate, &f.CustomRateCurrency, &f.EffectiveDate)
	if err != nil {
		if isNoRows(err) {
			return user.Financials{}, ErrNotFound
		}
		return user.Financials{}, err
	}
	f.PaybandID = fromNullUUID(payband)
	f.RateCardID = fromNullUUID(rateCard)
	return f, nil
}

func (r *PostgresFinancialsRepository) UpsertFinancials(ctx context.Context, f user.Financials) (user.Financials, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_financials (user_id, payband_id, rate_card_id, custom_rate, custom_rate_currency, effective_date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id) DO UPDATE SET
		   payband_id = EXCLUDED.payband_id,
		   rate_card_id = EXCLUDED.rate_card_id,
		   custom_rate = EXCLUDED.custom_rate,
		   custom_rate_currency = EXCLUDED.custom_rate_currency,
		   effective_date = EXCLUDED.effective_date`,
		f.UserID, f.PaybandID, f.RateCardID, f.CustomRate, f.CustomRateCurrency, f.EffectiveDate,
	)
	if err != nil {
		return user.Financials{}, err
	}
	return f, nil
}
