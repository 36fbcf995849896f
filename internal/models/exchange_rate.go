package models

import (
	"errors"
	"time"

	"takatrack/internal/money"
)

// Exchange rate scopes. A user-specific rate, when present, always wins over
// the global rate for the same (month, currency) pair.
const (
	RateScopeGlobal = "global"
	RateScopeUser   = "user"
)

// ExchangeRate is a once-per-month snapshot: units of the base currency per
// one unit of Currency. UserID is empty for the shared global rate; an empty
// string rather than NULL so the composite unique index deduplicates global
// rows on every driver.
type ExchangeRate struct {
	ID        string        `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	UserID    string        `json:"user_id" gorm:"column:user_id;type:varchar(255);not null;default:'';uniqueIndex:idx_rate_scope"`
	Month     string        `json:"month" gorm:"column:month;type:varchar(7);not null;uniqueIndex:idx_rate_scope"`
	Currency  string        `json:"currency" gorm:"column:currency;type:varchar(10);not null;uniqueIndex:idx_rate_scope"`
	Rate      money.Decimal `json:"rate" gorm:"column:rate;not null"`
	CreatedAt time.Time     `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time     `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for the ExchangeRate model
func (ExchangeRate) TableName() string {
	return "exchange_rates"
}

// Scope returns the resolution scope of the rate.
func (r *ExchangeRate) Scope() string {
	if r.UserID != "" {
		return RateScopeUser
	}
	return RateScopeGlobal
}

// Validate validates the exchange rate data
func (r *ExchangeRate) Validate() error {
	if err := ValidateMonth(r.Month); err != nil {
		return err
	}
	if r.Currency == "" {
		return errors.New("currency is required")
	}
	if r.Currency == money.BaseCurrency {
		return errors.New("currency must not be the base currency")
	}
	if !r.Rate.IsPositive() {
		return errors.New("rate must be positive")
	}
	return nil
}

// ValidateMonth checks a "YYYY-MM" month key.
func ValidateMonth(month string) error {
	if _, err := time.Parse("2006-01", month); err != nil {
		return errors.New("month must be in YYYY-MM format")
	}
	return nil
}

// MonthPeriod returns the [start, end] window of a "YYYY-MM" month, with end
// at the last nanosecond of the month.
func MonthPeriod(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("month must be in YYYY-MM format")
	}
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end, nil
}

// MonthKey renders a time as the "YYYY-MM" key used by rates and budgets.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
