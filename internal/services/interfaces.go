package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"takatrack/internal/models"
	"takatrack/internal/money"
)

// FXService defines the interface for exchange rate resolution and currency
// conversion into the base currency.
type FXService interface {
	// ResolveRate returns the effective rate for (user, month, currency),
	// with a user-specific rate winning over the global one. Missing rate is
	// *errors.ErrMissingExchangeRate.
	ResolveRate(ctx context.Context, userID, month, currency string) (decimal.Decimal, error)
	// ToBase converts an amount into the base currency using the resolved
	// rate. No fallback is applied here; missing rate fails loudly.
	ToBase(ctx context.Context, userID, month string, amount money.Money, currency string) (money.Money, error)
	UpsertRate(ctx context.Context, rate *models.ExchangeRate) error
	ListRates(ctx context.Context, userID, month string) ([]*models.ExchangeRate, error)
}

// IncomeService defines the interface for income operations
type IncomeService interface {
	Create(ctx context.Context, income *models.Income) error
	ListForMonth(ctx context.Context, userID, month string) ([]*models.Income, error)
	Delete(ctx context.Context, userID, id string) error
}

// ExpenseService defines the interface for expense operations. Create fixes
// the base-currency amount at entry time via FXService.
type ExpenseService interface {
	Create(ctx context.Context, expense *models.Expense) error
	Get(ctx context.Context, userID, id string) (*models.Expense, error)
	ListForMonth(ctx context.Context, userID, month string) ([]*models.Expense, error)
	Update(ctx context.Context, expense *models.Expense) error
	Delete(ctx context.Context, userID, id string) error
}

// BudgetService defines the interface for budget operations and derived
// consumption figures.
type BudgetService interface {
	Upsert(ctx context.Context, budget *models.Budget) error
	Statuses(ctx context.Context, userID, month string) ([]*models.BudgetStatus, error)
	Delete(ctx context.Context, userID, id string) error
}

// RecurringService defines the interface for recurring obligations: CRUD,
// monthly-equivalent projection, and the scheduled materializer.
type RecurringService interface {
	Create(ctx context.Context, rec *models.RecurringExpense) error
	List(ctx context.Context, userID string) ([]*models.RecurringExpense, error)
	Update(ctx context.Context, rec *models.RecurringExpense) error
	// ProcessDue materializes at most one realized expense per obligation for
	// the month containing now. Safe to invoke repeatedly.
	ProcessDue(ctx context.Context, now time.Time) (int, error)
}

// SummaryService defines the interface for the monthly summary aggregator.
type SummaryService interface {
	MonthlySummary(ctx context.Context, userID, month string) (*models.MonthlySummary, error)
}

// InvestmentService defines the interface for portfolio operations.
type InvestmentService interface {
	Create(ctx context.Context, inv *models.Investment) error
	Get(ctx context.Context, userID, id string) (*models.Investment, error)
	List(ctx context.Context, userID string) ([]*models.Investment, error)
	UpdateValuation(ctx context.Context, userID, id string, value money.Money) error
	Sell(ctx context.Context, userID, id string, proceeds money.Money, currency string, saleDate time.Time) (*models.Investment, error)
	RecordReturn(ctx context.Context, ret *models.InvestmentReturn) error
	Portfolio(ctx context.Context, userID string) (*models.PortfolioSummary, error)
}
