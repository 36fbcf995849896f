package models

import (
	"errors"
	"fmt"
	"time"

	"takatrack/internal/money"
)

// Recurring frequencies
const (
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
)

// RecurringExpense represents a recurring obligation (rent, subscriptions,
// insurance). A scheduled process materializes one realized expense per
// elapsed calendar month and stamps LastProcessedMonth, so a month is
// amortized at most once per obligation.
type RecurringExpense struct {
	ID        string      `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	UserID    string      `json:"user_id" gorm:"column:user_id;type:varchar(255);not null;index"`
	Name      string      `json:"name" gorm:"column:name;type:varchar(255);not null"`
	Category  string      `json:"category" gorm:"column:category;type:varchar(100);not null"`
	Amount    money.Money `json:"amount" gorm:"column:amount;not null"`
	Currency  string      `json:"currency" gorm:"column:currency;type:varchar(10);not null;default:'BDT'"`
	Frequency string      `json:"frequency" gorm:"column:frequency;type:varchar(20);not null"`

	StartDate time.Time  `json:"start_date" gorm:"column:start_date;not null"`
	EndDate   *time.Time `json:"end_date" gorm:"column:end_date"`
	Active    bool       `json:"active" gorm:"column:active;type:boolean;not null;default:true"`

	// LastProcessedMonth ("YYYY-MM") is the idempotence stamp for the
	// materializer.
	LastProcessedMonth *string `json:"last_processed_month" gorm:"column:last_processed_month;type:varchar(7)"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for the RecurringExpense model
func (RecurringExpense) TableName() string {
	return "recurring_expenses"
}

// Validate validates the recurring expense data
func (r *RecurringExpense) Validate() error {
	if r.UserID == "" {
		return errors.New("user_id is required")
	}
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.Category == "" {
		return errors.New("category is required")
	}
	if !r.Amount.IsPositive() {
		return errors.New("amount must be positive")
	}
	if r.Currency == "" {
		return errors.New("currency is required")
	}
	switch r.Frequency {
	case FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
	default:
		return fmt.Errorf("frequency must be %s, %s or %s", FrequencyWeekly, FrequencyMonthly, FrequencyYearly)
	}
	if r.StartDate.IsZero() {
		return errors.New("start_date is required")
	}
	if r.EndDate != nil && r.EndDate.Before(r.StartDate) {
		return errors.New("end_date must not be before start_date")
	}
	return nil
}

// ActiveDuring reports whether the obligation's active window overlaps the
// given period.
func (r *RecurringExpense) ActiveDuring(start, end time.Time) bool {
	if !r.Active {
		return false
	}
	if r.StartDate.After(end) {
		return false
	}
	if r.EndDate != nil && r.EndDate.Before(start) {
		return false
	}
	return true
}
