package models

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"takatrack/internal/money"
)

// Expense represents a single spend entry. Amount is what the user entered
// in Currency; AmountBDT is fixed at creation time via the exchange-rate
// resolution for that month and is never recomputed retroactively.
type Expense struct {
	ID          string      `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	UserID      string      `json:"user_id" gorm:"column:user_id;type:varchar(255);not null;index"`
	Category    string      `json:"category" gorm:"column:category;type:varchar(100);not null;index"`
	Description *string     `json:"description" gorm:"column:description;type:text"`
	Amount      money.Money `json:"amount" gorm:"column:amount;not null"`
	Currency    string      `json:"currency" gorm:"column:currency;type:varchar(10);not null;default:'BDT'"`
	AmountBDT   money.Money `json:"amount_bdt" gorm:"column:amount_bdt;not null"`
	Date        time.Time   `json:"date" gorm:"column:date;not null;index"`

	// IsRecurring marks expenses materialized from a recurring obligation so
	// they can be split out of variable spending.
	IsRecurring bool    `json:"is_recurring" gorm:"column:is_recurring;type:boolean;not null;default:false"`
	RecurringID *string `json:"recurring_id" gorm:"column:recurring_id;type:varchar(255);index"`

	CreatedAt time.Time      `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"column:deleted_at;index"`
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}

// Validate validates the expense data
func (e *Expense) Validate() error {
	if e.UserID == "" {
		return errors.New("user_id is required")
	}
	if e.Category == "" {
		return errors.New("category is required")
	}
	if e.Currency == "" {
		return errors.New("currency is required")
	}
	if e.Date.IsZero() {
		return errors.New("date is required")
	}
	if !e.Amount.IsPositive() {
		return errors.New("amount must be positive")
	}
	return nil
}
