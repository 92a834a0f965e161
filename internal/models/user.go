package models

import (
	"database/sql"
	"time"
)

// User представляет курьера в системе.
// User represents a courier in the system.
type User struct {
	ID         int64          `json:"id"`
	TelegramID int64          `json:"telegram_id"`
	Username   sql.NullString `json:"username"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	Settings   UserSettings   `json:"settings"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// UserSettings хранит тарифные и прочие настройки курьера.
// Тарифы фиксируются в смене в момент её сохранения: изменение настроек
// НЕ пересчитывает уже сохранённые смены.
type UserSettings struct {
	RatePerMinute       float64 `json:"ratePerMinute"`
	PriceZone1          float64 `json:"priceZone1"`
	PriceZone2          float64 `json:"priceZone2"`
	PriceZone3          float64 `json:"priceZone3"`
	TaxCoefficient      float64 `json:"taxCoefficient"`
	Currency            string  `json:"currency"`
	FuelTrackingEnabled bool    `json:"fuelTrackingEnabled"`
	LeaderboardOptIn    bool    `json:"leaderboardOptIn"`
	EarningsGoal        float64 `json:"earningsGoal"`
}

// Pricing возвращает тарифную часть настроек для движка расчёта.
func (s UserSettings) Pricing() PricingConfig {
	return PricingConfig{
		RatePerMinute:  s.RatePerMinute,
		PriceZone1:     s.PriceZone1,
		PriceZone2:     s.PriceZone2,
		PriceZone3:     s.PriceZone3,
		TaxCoefficient: s.TaxCoefficient,
	}
}

// DisplayName возвращает имя для отображения в рейтинге.
func (u User) DisplayName() string {
	if u.Username.Valid && u.Username.String != "" {
		return u.Username.String
	}
	if u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.FirstName
}
