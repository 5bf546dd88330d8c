package user

import (
	"time"

	"skillforge/internal/domain/skill"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

type User struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"-"`
	Role         string        `json:"role"`
	Department   string        `json:"department"`
	AvatarURL    string        `json:"avatar_url,omitempty"`
	Tenure       string        `json:"tenure"`
	Title        string        `json:"title,omitempty"`
	Location     string        `json:"location,omitempty"`
	Status       Status        `json:"status"`
	IsAdmin      bool          `json:"is_admin"`
	Skills       []skill.Skill `json:"skills"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// FindSkill returns the skill matching the (name, category, subcategory) triple.
func (u User) FindSkill(name, category, subcategory string) (skill.Skill, bool) {
	for _, s := range u.Skills {
		if s.SameAs(name, category, subcategory) {
			return s, true
		}
	}
	return skill.Skill{}, false
}

type Payband struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Label     string    `json:"label"`
	MinSalary int64     `json:"min_salary"`
	MaxSalary int64     `json:"max_salary"`
}

type RateCard struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	HourlyRate    float64   `json:"hourly_rate"`
	Currency      string    `json:"currency"`
	EffectiveDate time.Time `json:"effective_date"`
}

type Financials struct {
	UserID             uuid.UUID  `json:"user_id"`
	PaybandID          *uuid.UUID `json:"payband_id,omitempty"`
	RateCardID         *uuid.UUID `json:"rate_card_id,omitempty"`
	CustomRate         *float64   `json:"custom_rate,omitempty"`
	CustomRateCurrency string     `json:"custom_rate_currency,omitempty"`
	EffectiveDate      time.Time  `json:"effective_date"`
}
