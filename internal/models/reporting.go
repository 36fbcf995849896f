package models

import (
	"github.com/shopspring/decimal"

	"takatrack/internal/money"
)

// MonthlySummary is a pure derived aggregate over one calendar month. It is
// never persisted; every request recomputes it from income, expense,
// recurring and exchange-rate inputs.
type MonthlySummary struct {
	Month string `json:"month"`

	TotalIncome money.Money `json:"total_income"`

	// Realized transactions only.
	TotalExpenses money.Money     `json:"total_expenses"`
	NetSavings    money.Money     `json:"net_savings"`
	SavingsRate   decimal.Decimal `json:"savings_rate"`

	Categories []*CategoryBreakdown `json:"categories"`

	// Fixed/variable split of realized expenses.
	RecurringExpensesTotal money.Money `json:"recurring_expenses_total"`
	VariableExpensesTotal  money.Money `json:"variable_expenses_total"`

	// Projected recurring load: monthly equivalents of obligations active in
	// the window, converted to the base currency.
	MonthlyRecurringExpenses money.Money `json:"monthly_recurring_expenses"`

	// Realized + projected totals, reported side by side with the realized
	// ones. Consumers must not conflate the two.
	TotalExpensesWithRecurring money.Money     `json:"total_expenses_with_recurring"`
	NetSavingsWithRecurring    money.Money     `json:"net_savings_with_recurring"`
	SavingsRateWithRecurring   decimal.Decimal `json:"savings_rate_with_recurring"`
}

// CategoryBreakdown is one category's share of the month's expenses.
type CategoryBreakdown struct {
	Category   string          `json:"category"`
	Total      money.Money     `json:"total"`
	Percentage decimal.Decimal `json:"percentage"`
	Count      int             `json:"count"`
}

// PortfolioSummary aggregates positions and return events.
type PortfolioSummary struct {
	TotalInvested     money.Money `json:"total_invested"`
	TotalCurrentValue money.Money `json:"total_current_value"`
	UnrealizedGain    money.Money `json:"unrealized_gain"`
	TotalRealizedGain money.Money `json:"total_realized_gain"`
	TotalGain         money.Money `json:"total_gain"`

	// TotalReturns is cash distributions, orthogonal to gain.
	TotalReturns money.Money `json:"total_returns"`

	ByType map[string]*PortfolioTypeSummary `json:"by_type"`
}

// PortfolioTypeSummary mirrors the portfolio formulas scoped to one
// instrument type.
type PortfolioTypeSummary struct {
	Type              string      `json:"type"`
	Positions         int         `json:"positions"`
	TotalInvested     money.Money `json:"total_invested"`
	TotalCurrentValue money.Money `json:"total_current_value"`
	UnrealizedGain    money.Money `json:"unrealized_gain"`
	TotalRealizedGain money.Money `json:"total_realized_gain"`
	TotalGain         money.Money `json:"total_gain"`
	TotalReturns      money.Money `json:"total_returns"`
}
