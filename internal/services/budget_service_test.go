package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"takatrack/internal/models"
	"takatrack/internal/money"
	"takatrack/internal/repositories"
)

func TestComputeConsumption(t *testing.T) {
	tests := []struct {
		name               string
		budgeted           string
		spent              string
		expectedRemaining  string
		expectedPercentage string
	}{
		{name: "half consumed", budgeted: "100", spent: "50", expectedRemaining: "50.00", expectedPercentage: "50"},
		{name: "zero budget reports zero percent", budgeted: "0", spent: "50", expectedRemaining: "-50.00", expectedPercentage: "0"},
		{name: "overspend is representable", budgeted: "100", spent: "150", expectedRemaining: "-50.00", expectedPercentage: "150"},
		{name: "nothing spent", budgeted: "2000", spent: "0", expectedRemaining: "2000.00", expectedPercentage: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ComputeConsumption(money.MustParse(tt.budgeted), money.MustParse(tt.spent))
			assert.Equal(t, tt.expectedRemaining, c.Remaining.DisplayString())
			assert.True(t, c.Percentage.Equal(decimal.RequireFromString(tt.expectedPercentage)),
				"percentage = %s, want %s", c.Percentage, tt.expectedPercentage)
		})
	}
}

func TestAlertLevel(t *testing.T) {
	tests := []struct {
		percentage string
		expected   string
	}{
		{"0", models.AlertOK},
		{"74.9", models.AlertOK},
		{"75", models.AlertWarning},
		{"89.99", models.AlertWarning},
		{"90", models.AlertDanger},
		{"99.5", models.AlertDanger},
		{"100", models.AlertCritical},
		{"150", models.AlertCritical},
	}

	for _, tt := range tests {
		got := AlertLevel(decimal.RequireFromString(tt.percentage))
		assert.Equal(t, tt.expected, got, "alert for %s%%", tt.percentage)
	}
}

func TestDisplayPercentageClampsBarNotText(t *testing.T) {
	pct := decimal.RequireFromString("105")
	// Bar width is clamped, the underlying number is not.
	assert.Equal(t, 100, DisplayPercentage(pct))
	assert.True(t, pct.Equal(decimal.RequireFromString("105")))

	assert.Equal(t, 67, DisplayPercentage(decimal.RequireFromString("66.7")))
	assert.Equal(t, 0, DisplayPercentage(decimal.RequireFromString("-10")))
}

func TestBudgetStatuses(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	budgets := repositories.NewBudgetRepository(database)
	expenses := repositories.NewExpenseRepository(database)
	svc := NewBudgetService(budgets, expenses)

	require.NoError(t, svc.Upsert(ctx, &models.Budget{
		UserID:   "u1",
		Category: "Groceries",
		Month:    "2025-06",
		Amount:   money.MustParse("10000"),
	}))

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	for _, amount := range []string{"4000", "5000", "2500"} {
		require.NoError(t, expenses.Create(ctx, &models.Expense{
			UserID:    "u1",
			Category:  "Groceries",
			Amount:    money.MustParse(amount),
			Currency:  money.BaseCurrency,
			AmountBDT: money.MustParse(amount),
			Date:      date,
		}))
	}
	// Different month, must not count.
	require.NoError(t, expenses.Create(ctx, &models.Expense{
		UserID:    "u1",
		Category:  "Groceries",
		Amount:    money.MustParse("9999"),
		Currency:  money.BaseCurrency,
		AmountBDT: money.MustParse("9999"),
		Date:      time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}))

	statuses, err := svc.Statuses(ctx, "u1", "2025-06")
	require.NoError(t, err)
	require.Len(t, statuses, 1)

	st := statuses[0]
	assert.Equal(t, "11500.00", st.Spent.DisplayString())
	assert.Equal(t, "-1500.00", st.Remaining.DisplayString())
	assert.True(t, st.Percentage.Equal(decimal.RequireFromString("115")), "percentage = %s", st.Percentage)
	assert.Equal(t, 100, st.DisplayPercentage)
	assert.Equal(t, models.AlertCritical, st.Alert)
}
