package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"takatrack/internal/models"
	"takatrack/internal/money"
	"takatrack/internal/repositories"
)

func TestMonthlyEquivalent(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		frequency string
		expected  string
	}{
		{name: "monthly passes through", amount: "1500", frequency: models.FrequencyMonthly, expected: "1500.00"},
		{name: "yearly divides by twelve", amount: "1200", frequency: models.FrequencyYearly, expected: "100.00"},
		// 52 weeks spread over 12 months, the documented policy factor.
		{name: "weekly spreads 52 weeks", amount: "100", frequency: models.FrequencyWeekly, expected: "433.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MonthlyEquivalent(money.MustParse(tt.amount), tt.frequency)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.DisplayString())
		})
	}

	_, err := MonthlyEquivalent(money.MustParse("10"), "daily")
	assert.Error(t, err)
}

func TestMonthlyEquivalentYearlyExact(t *testing.T) {
	got, err := MonthlyEquivalent(money.MustParse("1200"), models.FrequencyYearly)
	require.NoError(t, err)
	assert.True(t, got.Equal(money.MustParse("100")))
}

func newRecurringFixture(t *testing.T) (RecurringService, repositories.RecurringRepository, repositories.ExpenseRepository, FXService) {
	database := setupTestDB(t)
	recRepo := repositories.NewRecurringRepository(database)
	expRepo := repositories.NewExpenseRepository(database)
	fx := NewFXService(repositories.NewExchangeRateRepository(database))
	svc := NewRecurringService(recRepo, fx, zap.NewNop())
	return svc, recRepo, expRepo, fx
}

func TestProcessDueMaterializesOncePerMonth(t *testing.T) {
	svc, recRepo, expRepo, _ := newRecurringFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &models.RecurringExpense{
		UserID:    "u1",
		Name:      "Rent",
		Category:  "Housing",
		Amount:    money.MustParse("15000"),
		Currency:  money.BaseCurrency,
		Frequency: models.FrequencyMonthly,
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Active:    true,
	}))

	now := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

	processed, err := svc.ProcessDue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, processed)

	// A second run in the same month is a no-op.
	processed, err = svc.ProcessDue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 0, processed)

	start, end, err := models.MonthPeriod("2025-06")
	require.NoError(t, err)
	charges, err := expRepo.ListForPeriod(ctx, "u1", start, end)
	require.NoError(t, err)
	require.Len(t, charges, 1, "exactly one materialized charge per month")

	charge := charges[0]
	assert.True(t, charge.IsRecurring)
	assert.Equal(t, "Housing", charge.Category)
	assert.Equal(t, "15000.00", charge.AmountBDT.DisplayString())
	require.NotNil(t, charge.RecurringID)

	recs, err := recRepo.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.NotNil(t, recs[0].LastProcessedMonth)
	assert.Equal(t, "2025-06", *recs[0].LastProcessedMonth)
}

func TestUpdatePersistsDeactivation(t *testing.T) {
	svc, recRepo, _, _ := newRecurringFixture(t)
	ctx := context.Background()

	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	rec := &models.RecurringExpense{
		UserID:    "u1",
		Name:      "Gym",
		Category:  "Health",
		Amount:    money.MustParse("2000"),
		Currency:  money.BaseCurrency,
		Frequency: models.FrequencyMonthly,
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
		Active:    true,
	}
	require.NoError(t, svc.Create(ctx, rec))

	rec.Active = false
	rec.EndDate = nil
	require.NoError(t, svc.Update(ctx, rec))

	stored, err := recRepo.GetByID(ctx, "u1", rec.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active, "deactivation must persist")
	assert.Nil(t, stored.EndDate, "cleared end date must persist")
}

func TestProcessDueSkipsObligationWithoutRate(t *testing.T) {
	svc, _, expRepo, _ := newRecurringFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &models.RecurringExpense{
		UserID:    "u1",
		Name:      "Cloud storage",
		Category:  "Subscriptions",
		Amount:    money.MustParse("10"),
		Currency:  "USD",
		Frequency: models.FrequencyMonthly,
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Active:    true,
	}))

	now := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	processed, err := svc.ProcessDue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 0, processed, "missing rate must not materialize a guessed charge")

	start, end, _ := models.MonthPeriod("2025-06")
	charges, err := expRepo.ListForPeriod(ctx, "u1", start, end)
	require.NoError(t, err)
	assert.Empty(t, charges)
}

func TestProcessDueConvertsForeignCharge(t *testing.T) {
	svc, _, expRepo, fx := newRecurringFixture(t)
	ctx := context.Background()

	require.NoError(t, fx.UpsertRate(ctx, &models.ExchangeRate{
		Month: "2025-06", Currency: "USD", Rate: money.NewDecimal(decimal.NewFromInt(110)),
	}))
	require.NoError(t, svc.Create(ctx, &models.RecurringExpense{
		UserID:    "u1",
		Name:      "Streaming",
		Category:  "Subscriptions",
		Amount:    money.MustParse("10"),
		Currency:  "USD",
		Frequency: models.FrequencyMonthly,
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Active:    true,
	}))

	processed, err := svc.ProcessDue(ctx, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, 1, processed)

	start, end, _ := models.MonthPeriod("2025-06")
	charges, err := expRepo.ListForPeriod(ctx, "u1", start, end)
	require.NoError(t, err)
	require.Len(t, charges, 1)
	assert.Equal(t, "1100.00", charges[0].AmountBDT.DisplayString())
	assert.Equal(t, "10.00", charges[0].Amount.DisplayString())
	assert.Equal(t, "USD", charges[0].Currency)
}
