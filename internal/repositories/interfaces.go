package repositories

import (
	"context"
	"time"

	"takatrack/internal/models"
	"takatrack/internal/money"
)

// IncomeRepository defines the interface for income data operations
type IncomeRepository interface {
	Create(ctx context.Context, income *models.Income) error
	ListForPeriod(ctx context.Context, userID string, start, end time.Time) ([]*models.Income, error)
	Delete(ctx context.Context, userID, id string) error
}

// ExpenseRepository defines the interface for expense data operations.
// Deletes are soft; listing never returns deleted rows.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *models.Expense) error
	GetByID(ctx context.Context, userID, id string) (*models.Expense, error)
	ListForPeriod(ctx context.Context, userID string, start, end time.Time) ([]*models.Expense, error)
	ListForCategory(ctx context.Context, userID, category string, start, end time.Time) ([]*models.Expense, error)
	Update(ctx context.Context, expense *models.Expense) error
	Delete(ctx context.Context, userID, id string) error
}

// BudgetRepository defines the interface for budget data operations
type BudgetRepository interface {
	Upsert(ctx context.Context, budget *models.Budget) error
	ListForMonth(ctx context.Context, userID, month string) ([]*models.Budget, error)
	Delete(ctx context.Context, userID, id string) error
}

// RecurringRepository defines the interface for recurring obligation data
// operations. MaterializeCharge appends the realized expense and stamps the
// obligation's LastProcessedMonth in a single transaction.
type RecurringRepository interface {
	Create(ctx context.Context, rec *models.RecurringExpense) error
	GetByID(ctx context.Context, userID, id string) (*models.RecurringExpense, error)
	List(ctx context.Context, userID string) ([]*models.RecurringExpense, error)
	ListActive(ctx context.Context) ([]*models.RecurringExpense, error)
	ListActiveDuring(ctx context.Context, userID string, start, end time.Time) ([]*models.RecurringExpense, error)
	Update(ctx context.Context, rec *models.RecurringExpense) error
	MaterializeCharge(ctx context.Context, rec *models.RecurringExpense, expense *models.Expense, month string) error
}

// ExchangeRateRepository defines the interface for exchange rate storage.
// Resolve returns (nil, nil) when no rate exists; policy on missing rates
// belongs to the caller.
type ExchangeRateRepository interface {
	Upsert(ctx context.Context, rate *models.ExchangeRate) error
	Resolve(ctx context.Context, userID, month, currency string) (*models.ExchangeRate, error)
	ListForMonth(ctx context.Context, userID, month string) ([]*models.ExchangeRate, error)
}

// InvestmentRepository defines the interface for investment data operations.
// Sell applies the buy's status flip and the sell record insert atomically.
type InvestmentRepository interface {
	Create(ctx context.Context, inv *models.Investment) error
	GetByID(ctx context.Context, userID, id string) (*models.Investment, error)
	List(ctx context.Context, userID string) ([]*models.Investment, error)
	ListBuys(ctx context.Context, userID string, statuses []string) ([]*models.Investment, error)
	ListSells(ctx context.Context, userID string) ([]*models.Investment, error)
	UpdateValuation(ctx context.Context, userID, id string, value money.Money) error
	Sell(ctx context.Context, buy, sell *models.Investment) error
	CreateReturn(ctx context.Context, ret *models.InvestmentReturn) error
	ListReturns(ctx context.Context, userID string) ([]*models.InvestmentReturn, error)
}
