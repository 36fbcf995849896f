package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"takatrack/internal/db"
	"takatrack/internal/models"
	"takatrack/internal/money"
)

func setupTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.ConnectSQLite("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, database.Migrate())
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestExpenseRoundTripsExactly(t *testing.T) {
	repo := NewExpenseRepository(setupTestDB(t))
	ctx := context.Background()

	date := time.Date(2025, 6, 3, 14, 30, 0, 0, time.UTC)
	for _, amount := range []string{"0.1", "0.2", "199.99", "12345.678901234567891"} {
		expense := &models.Expense{
			UserID:    "u1",
			Category:  "Misc",
			Amount:    money.MustParse(amount),
			Currency:  money.BaseCurrency,
			AmountBDT: money.MustParse(amount),
			Date:      date,
		}
		require.NoError(t, repo.Create(ctx, expense))

		stored, err := repo.GetByID(ctx, "u1", expense.ID)
		require.NoError(t, err)
		// Amounts come back as the exact decimal that went in; a float
		// round-trip would turn 0.1 into 0.1000000000000000055511151231.
		assert.True(t, stored.AmountBDT.Equal(money.MustParse(amount)),
			"stored %s, read back %s", amount, stored.AmountBDT)
		assert.True(t, stored.Date.Equal(date))
	}

	start, end, err := models.MonthPeriod("2025-06")
	require.NoError(t, err)
	listed, err := repo.ListForPeriod(ctx, "u1", start, end)
	require.NoError(t, err)
	require.Len(t, listed, 4)

	total := money.Zero()
	for _, e := range listed {
		total = total.Add(e.AmountBDT)
	}
	assert.Equal(t, "12545.97", total.DisplayString())
}

func TestExpenseUpdatePersistsClearedFlags(t *testing.T) {
	repo := NewExpenseRepository(setupTestDB(t))
	ctx := context.Background()

	description := "materialized"
	recurringID := "rec-1"
	expense := &models.Expense{
		UserID:      "u1",
		Category:    "Housing",
		Description: &description,
		Amount:      money.MustParse("15000"),
		Currency:    money.BaseCurrency,
		AmountBDT:   money.MustParse("15000"),
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		IsRecurring: true,
		RecurringID: &recurringID,
	}
	require.NoError(t, repo.Create(ctx, expense))

	expense.IsRecurring = false
	expense.RecurringID = nil
	expense.Description = nil
	require.NoError(t, repo.Update(ctx, expense))

	stored, err := repo.GetByID(ctx, "u1", expense.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsRecurring, "cleared flag must persist")
	assert.Nil(t, stored.RecurringID)
	assert.Nil(t, stored.Description)
}
