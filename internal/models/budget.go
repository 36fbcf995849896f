package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"takatrack/internal/money"
)

// Budget alert levels, evaluated on the unclamped consumption percentage.
const (
	AlertOK       = "ok"
	AlertWarning  = "warning"
	AlertDanger   = "danger"
	AlertCritical = "critical"
)

// Budget represents a budgeted amount for one category in one month.
// Spent, remaining and percentage are derived, never stored.
type Budget struct {
	ID        string      `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	UserID    string      `json:"user_id" gorm:"column:user_id;type:varchar(255);not null;uniqueIndex:idx_budget_scope"`
	Category  string      `json:"category" gorm:"column:category;type:varchar(100);not null;uniqueIndex:idx_budget_scope"`
	Month     string      `json:"month" gorm:"column:month;type:varchar(7);not null;uniqueIndex:idx_budget_scope"`
	Amount    money.Money `json:"amount" gorm:"column:amount;not null"`
	CreatedAt time.Time   `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time   `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for the Budget model
func (Budget) TableName() string {
	return "budgets"
}

// Validate validates the budget data
func (b *Budget) Validate() error {
	if b.UserID == "" {
		return errors.New("user_id is required")
	}
	if b.Category == "" {
		return errors.New("category is required")
	}
	if err := ValidateMonth(b.Month); err != nil {
		return err
	}
	if b.Amount.IsNegative() {
		return errors.New("amount must be non-negative")
	}
	return nil
}

// BudgetStatus is the derived consumption view of one budget.
type BudgetStatus struct {
	Category string      `json:"category"`
	Month    string      `json:"month"`
	Budgeted money.Money `json:"budgeted"`
	Spent    money.Money `json:"spent"`
	// Remaining may be negative; overspend is representable, not clamped.
	Remaining money.Money `json:"remaining"`
	// Percentage is the unclamped consumption percentage. DisplayPercentage
	// is rounded to the nearest integer and clamped to 100 for progress-bar
	// width; the underlying number is never clamped.
	Percentage        decimal.Decimal `json:"percentage"`
	DisplayPercentage int             `json:"display_percentage"`
	Alert             string          `json:"alert"`
}
