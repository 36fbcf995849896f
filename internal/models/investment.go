package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"takatrack/internal/money"
)

// Investment transaction types
const (
	InvestmentBuy  = "buy"
	InvestmentSell = "sell"
)

// Investment statuses. Sold is terminal.
const (
	StatusActive   = "active"
	StatusMatured  = "matured"
	StatusReturned = "returned"
	StatusSold     = "sold"
)

// Investment return types
const (
	ReturnDividend = "dividend"
	ReturnInterest = "interest"
	ReturnRent     = "rent"
)

// Investment represents one position entry. A sell is a distinct row linked
// to the buy it closes via BuyID; it carries the copied cost basis and the
// realized gain fixed at sale time. The original buy row only flips status.
type Investment struct {
	ID              string  `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	UserID          string  `json:"user_id" gorm:"column:user_id;type:varchar(255);not null;index"`
	Name            string  `json:"name" gorm:"column:name;type:varchar(255);not null"`
	Type            string  `json:"type" gorm:"column:type;type:varchar(50);not null;index"`
	TransactionType string  `json:"transaction_type" gorm:"column:transaction_type;type:varchar(10);not null;index"`
	Status          string  `json:"status" gorm:"column:status;type:varchar(20);not null;index"`
	BuyID           *string `json:"buy_id" gorm:"column:buy_id;type:varchar(255);index"`

	CostBasis money.Money `json:"cost_basis" gorm:"column:cost_basis;not null"`
	Currency  string      `json:"currency" gorm:"column:currency;type:varchar(10);not null;default:'BDT'"`

	// CurrentValue is the last manually recorded valuation. A position with
	// no valuation is valued at cost, never at zero.
	CurrentValue *money.Money `json:"current_value" gorm:"column:current_value"`

	SaleProceeds *money.Money `json:"sale_proceeds" gorm:"column:sale_proceeds"`
	RealizedGain *money.Money `json:"realized_gain" gorm:"column:realized_gain"`

	PurchaseDate time.Time  `json:"purchase_date" gorm:"column:purchase_date;not null"`
	SaleDate     *time.Time `json:"sale_date" gorm:"column:sale_date"`

	CreatedAt time.Time      `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"column:deleted_at;index"`
}

// TableName returns the table name for the Investment model
func (Investment) TableName() string {
	return "investments"
}

// Validate validates the investment data
func (i *Investment) Validate() error {
	if i.UserID == "" {
		return errors.New("user_id is required")
	}
	if i.Name == "" {
		return errors.New("name is required")
	}
	if i.Type == "" {
		return errors.New("type is required")
	}
	if i.TransactionType != InvestmentBuy && i.TransactionType != InvestmentSell {
		return fmt.Errorf("transaction_type must be %s or %s", InvestmentBuy, InvestmentSell)
	}
	switch i.Status {
	case StatusActive, StatusMatured, StatusReturned, StatusSold:
	default:
		return errors.New("invalid status")
	}
	if i.CostBasis.IsNegative() {
		return errors.New("cost_basis must be non-negative")
	}
	if i.PurchaseDate.IsZero() {
		return errors.New("purchase_date is required")
	}
	return nil
}

// Sellable reports whether the position can still be sold.
func (i *Investment) Sellable() bool {
	if i.TransactionType != InvestmentBuy {
		return false
	}
	switch i.Status {
	case StatusActive, StatusMatured, StatusReturned:
		return true
	}
	return false
}

// Valuation returns the amount the position is carried at: the last
// recorded valuation when present, otherwise cost.
func (i *Investment) Valuation() money.Money {
	if i.CurrentValue != nil {
		return *i.CurrentValue
	}
	return i.CostBasis
}

// InvestmentReturn is a cash distribution event (dividend, interest, rent),
// independent of position status and never netted against gains.
type InvestmentReturn struct {
	ID           string      `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	UserID       string      `json:"user_id" gorm:"column:user_id;type:varchar(255);not null;index"`
	InvestmentID *string     `json:"investment_id" gorm:"column:investment_id;type:varchar(255);index"`
	Amount       money.Money `json:"amount" gorm:"column:amount;not null"`
	ReturnType   string      `json:"return_type" gorm:"column:return_type;type:varchar(20);not null"`
	Date         time.Time   `json:"date" gorm:"column:date;not null"`
	CreatedAt    time.Time   `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time   `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for the InvestmentReturn model
func (InvestmentReturn) TableName() string {
	return "investment_returns"
}

// Validate validates the investment return data
func (r *InvestmentReturn) Validate() error {
	if r.UserID == "" {
		return errors.New("user_id is required")
	}
	if !r.Amount.IsPositive() {
		return errors.New("amount must be positive")
	}
	switch r.ReturnType {
	case ReturnDividend, ReturnInterest, ReturnRent:
	default:
		return errors.New("invalid return_type")
	}
	if r.Date.IsZero() {
		return errors.New("date is required")
	}
	return nil
}
