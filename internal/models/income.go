package models

import (
	"errors"
	"time"

	"takatrack/internal/money"
)

// Income represents a single income entry. Income is recorded directly in
// the base currency at entry time.
type Income struct {
	ID        string      `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	UserID    string      `json:"user_id" gorm:"column:user_id;type:varchar(255);not null;index"`
	Source    string      `json:"source" gorm:"column:source;type:varchar(255);not null"`
	Amount    money.Money `json:"amount" gorm:"column:amount;not null"`
	Date      time.Time   `json:"date" gorm:"column:date;not null;index"`
	Note      *string     `json:"note" gorm:"column:note;type:text"`
	CreatedAt time.Time   `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time   `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for the Income model
func (Income) TableName() string {
	return "incomes"
}

// Validate validates the income data
func (i *Income) Validate() error {
	if i.UserID == "" {
		return errors.New("user_id is required")
	}
	if i.Source == "" {
		return errors.New("source is required")
	}
	if i.Date.IsZero() {
		return errors.New("date is required")
	}
	if i.Amount.IsNegative() {
		return errors.New("amount must be non-negative")
	}
	return nil
}
