package services

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"takatrack/internal/models"
	"takatrack/internal/money"
	"takatrack/internal/repositories"
)

type summaryService struct {
	incomes   repositories.IncomeRepository
	expenses  repositories.ExpenseRepository
	recurring repositories.RecurringRepository
	fx        FXService
	estimates EstimatePolicy
	logger    *zap.Logger
}

// NewSummaryService creates a new monthly summary service. The estimate
// policy is only consulted for the projected recurring load; realized
// figures never go near it.
func NewSummaryService(
	incomes repositories.IncomeRepository,
	expenses repositories.ExpenseRepository,
	recurring repositories.RecurringRepository,
	fx FXService,
	estimates EstimatePolicy,
	logger *zap.Logger,
) SummaryService {
	return &summaryService{
		incomes:   incomes,
		expenses:  expenses,
		recurring: recurring,
		fx:        fx,
		estimates: estimates,
		logger:    logger,
	}
}

// MonthlySummary recomputes the month's reconciled report from scratch on
// every call. Nothing here is persisted.
func (s *summaryService) MonthlySummary(ctx context.Context, userID, month string) (*models.MonthlySummary, error) {
	start, end, err := models.MonthPeriod(month)
	if err != nil {
		return nil, err
	}

	incomes, err := s.incomes.ListForPeriod(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.ListForPeriod(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	obligations, err := s.recurring.ListActiveDuring(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	summary := &models.MonthlySummary{Month: month}

	totalIncome := money.Zero()
	for _, in := range incomes {
		totalIncome = totalIncome.Add(in.Amount)
	}
	summary.TotalIncome = totalIncome

	// Realized expenses: the base-currency amount was fixed at creation time
	// and is summed as-is, never reconverted.
	totalExpenses := money.Zero()
	recurringTotal := money.Zero()
	byCategory := make(map[string]*models.CategoryBreakdown)
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.AmountBDT)
		if e.IsRecurring {
			recurringTotal = recurringTotal.Add(e.AmountBDT)
		}
		cb, ok := byCategory[e.Category]
		if !ok {
			cb = &models.CategoryBreakdown{Category: e.Category}
			byCategory[e.Category] = cb
		}
		cb.Total = cb.Total.Add(e.AmountBDT)
		cb.Count++
	}
	summary.TotalExpenses = totalExpenses
	summary.RecurringExpensesTotal = recurringTotal
	summary.VariableExpensesTotal = totalExpenses.Sub(recurringTotal)

	summary.NetSavings = totalIncome.Sub(totalExpenses)
	summary.SavingsRate = savingsRate(summary.NetSavings, totalIncome)

	for _, cb := range byCategory {
		if !totalExpenses.IsZero() {
			pct, _ := cb.Total.Ratio(totalExpenses)
			cb.Percentage = pct
		}
		summary.Categories = append(summary.Categories, cb)
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		return summary.Categories[i].Total.GreaterThan(summary.Categories[j].Total)
	})

	// Projected recurring load: monthly equivalents of active obligations,
	// converted to the base currency. This is the one place a missing rate
	// falls back to the static estimate table, and it is logged every time.
	monthlyRecurring := money.Zero()
	for _, rec := range obligations {
		equiv, err := MonthlyEquivalent(rec.Amount, rec.Frequency)
		if err != nil {
			return nil, err
		}
		inBase, err := s.fx.ToBase(ctx, userID, month, equiv, rec.Currency)
		if err != nil {
			fallback, ok := s.estimates.Rate(rec.Currency)
			if !ok {
				return nil, err
			}
			s.logger.Warn("using fallback exchange rate for recurring projection",
				zap.String("recurring_id", rec.ID),
				zap.String("currency", rec.Currency),
				zap.String("month", month),
				zap.String("fallback_rate", fallback.String()))
			inBase = equiv.Mul(fallback)
		}
		monthlyRecurring = monthlyRecurring.Add(inBase)
	}
	summary.MonthlyRecurringExpenses = monthlyRecurring

	// Parallel totals: realized only vs realized + projected, each with its
	// own savings pair.
	summary.TotalExpensesWithRecurring = totalExpenses.Add(monthlyRecurring)
	summary.NetSavingsWithRecurring = totalIncome.Sub(summary.TotalExpensesWithRecurring)
	summary.SavingsRateWithRecurring = savingsRate(summary.NetSavingsWithRecurring, totalIncome)

	return summary, nil
}

// savingsRate is net ÷ income × 100, with zero income reported as a 0% rate
// rather than an error.
func savingsRate(net, income money.Money) decimal.Decimal {
	if income.IsZero() {
		return decimal.Zero
	}
	rate, _ := net.Ratio(income)
	return rate
}
