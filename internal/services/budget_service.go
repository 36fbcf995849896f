package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"takatrack/internal/models"
	"takatrack/internal/money"
	"takatrack/internal/repositories"
)

// Consumption holds the derived view of one budget: what was spent, what is
// left, and the unclamped consumption percentage.
type Consumption struct {
	Spent     money.Money
	Remaining money.Money
	// Percentage is kept unrounded for chained math; handlers round to the
	// nearest integer for display.
	Percentage decimal.Decimal
}

// ComputeConsumption derives remaining and percentage from a budgeted amount
// and actual spend. A zero budget reports 0%, not a division error; an
// overspent budget reports a negative remaining and a percentage above 100.
func ComputeConsumption(budgeted, spent money.Money) Consumption {
	c := Consumption{
		Spent:     spent,
		Remaining: budgeted.Sub(spent),
	}
	if budgeted.IsZero() {
		c.Percentage = decimal.Zero
		return c
	}
	// budgeted is non-zero, Ratio cannot fail
	pct, _ := spent.Ratio(budgeted)
	c.Percentage = pct
	return c
}

// AlertLevel classifies an unclamped consumption percentage into the levels
// the UI renders. Thresholds: ≥100 critical, ≥90 danger, ≥75 warning.
func AlertLevel(percentage decimal.Decimal) string {
	switch {
	case percentage.GreaterThanOrEqual(decimal.NewFromInt(100)):
		return models.AlertCritical
	case percentage.GreaterThanOrEqual(decimal.NewFromInt(90)):
		return models.AlertDanger
	case percentage.GreaterThanOrEqual(decimal.NewFromInt(75)):
		return models.AlertWarning
	default:
		return models.AlertOK
	}
}

// DisplayPercentage rounds to the nearest integer and clamps to 100 for
// progress-bar width. The unclamped number stays available as text, so
// "105%" still reads as 105.
func DisplayPercentage(percentage decimal.Decimal) int {
	rounded := int(percentage.Round(0).IntPart())
	if rounded > 100 {
		return 100
	}
	if rounded < 0 {
		return 0
	}
	return rounded
}

type budgetService struct {
	budgets  repositories.BudgetRepository
	expenses repositories.ExpenseRepository
}

// NewBudgetService creates a new budget service
func NewBudgetService(budgets repositories.BudgetRepository, expenses repositories.ExpenseRepository) BudgetService {
	return &budgetService{budgets: budgets, expenses: expenses}
}

func (s *budgetService) Upsert(ctx context.Context, budget *models.Budget) error {
	if err := budget.Validate(); err != nil {
		return fmt.Errorf("invalid budget: %w", err)
	}
	return s.budgets.Upsert(ctx, budget)
}

// Statuses computes the consumption of every budget in the month. Spend is
// summed from the expenses' base-currency amounts in decimal space.
func (s *budgetService) Statuses(ctx context.Context, userID, month string) ([]*models.BudgetStatus, error) {
	start, end, err := models.MonthPeriod(month)
	if err != nil {
		return nil, err
	}

	budgets, err := s.budgets.ListForMonth(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	statuses := make([]*models.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		expenses, err := s.expenses.ListForCategory(ctx, userID, b.Category, start, end)
		if err != nil {
			return nil, err
		}
		spent := money.Zero()
		for _, e := range expenses {
			spent = spent.Add(e.AmountBDT)
		}

		c := ComputeConsumption(b.Amount, spent)
		statuses = append(statuses, &models.BudgetStatus{
			Category:          b.Category,
			Month:             b.Month,
			Budgeted:          b.Amount,
			Spent:             c.Spent,
			Remaining:         c.Remaining,
			Percentage:        c.Percentage,
			DisplayPercentage: DisplayPercentage(c.Percentage),
			Alert:             AlertLevel(c.Percentage),
		})
	}
	return statuses, nil
}

func (s *budgetService) Delete(ctx context.Context, userID, id string) error {
	return s.budgets.Delete(ctx, userID, id)
}
