package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "takatrack/internal/errors"
	"takatrack/internal/models"
	"takatrack/internal/money"
	"takatrack/internal/repositories"
)

func newFXFixture(t *testing.T) (FXService, repositories.ExchangeRateRepository) {
	database := setupTestDB(t)
	repo := repositories.NewExchangeRateRepository(database)
	return NewFXService(repo), repo
}

func TestToBaseIdentity(t *testing.T) {
	svc, _ := newFXFixture(t)

	// Base-currency amounts convert to themselves with no rate in the store.
	amount := money.MustParse("123.45")
	got, err := svc.ToBase(context.Background(), "u1", "2025-06", amount, money.BaseCurrency)
	require.NoError(t, err)
	assert.True(t, got.Equal(amount))
}

func TestToBaseMissingRateFailsLoudly(t *testing.T) {
	svc, _ := newFXFixture(t)

	_, err := svc.ToBase(context.Background(), "u1", "2025-06", money.MustParse("100"), "USD")
	require.Error(t, err)

	var missing *apperrors.ErrMissingExchangeRate
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "USD", missing.Currency)
	assert.Equal(t, "2025-06", missing.Month)
}

func TestResolveRateUserOverridesGlobal(t *testing.T) {
	svc, _ := newFXFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.UpsertRate(ctx, &models.ExchangeRate{
		Month:    "2025-06",
		Currency: "USD",
		Rate:     money.NewDecimal(decimal.NewFromInt(110)),
	}))

	require.NoError(t, svc.UpsertRate(ctx, &models.ExchangeRate{
		UserID:   "u1",
		Month:    "2025-06",
		Currency: "USD",
		Rate:     money.NewDecimal(decimal.NewFromInt(112)),
	}))

	rate, err := svc.ResolveRate(ctx, "u1", "2025-06", "USD")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(112)), "user override must win, got %s", rate)

	// A user without an override falls back to the global rate.
	rate, err = svc.ResolveRate(ctx, "u2", "2025-06", "USD")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(110)))

	// Another month has no rate at all.
	_, err = svc.ResolveRate(ctx, "u1", "2025-07", "USD")
	var missing *apperrors.ErrMissingExchangeRate
	require.True(t, errors.As(err, &missing))
}

func TestToBaseMultipliesByRate(t *testing.T) {
	svc, _ := newFXFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.UpsertRate(ctx, &models.ExchangeRate{
		Month:    "2025-06",
		Currency: "USD",
		Rate:     money.NewDecimal(decimal.RequireFromString("110.50")),
	}))

	got, err := svc.ToBase(ctx, "u1", "2025-06", money.MustParse("10"), "USD")
	require.NoError(t, err)
	assert.Equal(t, "1105.00", got.DisplayString())
}

func TestUpsertRateReplaces(t *testing.T) {
	svc, _ := newFXFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.UpsertRate(ctx, &models.ExchangeRate{
		Month: "2025-06", Currency: "USD", Rate: money.NewDecimal(decimal.NewFromInt(109)),
	}))
	require.NoError(t, svc.UpsertRate(ctx, &models.ExchangeRate{
		Month: "2025-06", Currency: "USD", Rate: money.NewDecimal(decimal.NewFromInt(111)),
	}))

	rate, err := svc.ResolveRate(ctx, "u1", "2025-06", "USD")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(111)))

	rates, err := svc.ListRates(ctx, "u1", "2025-06")
	require.NoError(t, err)
	assert.Len(t, rates, 1, "upsert must replace, not append")
}

func TestUpsertRateScopesStayDistinct(t *testing.T) {
	svc, _ := newFXFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.UpsertRate(ctx, &models.ExchangeRate{
		Month: "2025-06", Currency: "USD", Rate: money.NewDecimal(decimal.NewFromInt(110)),
	}))
	require.NoError(t, svc.UpsertRate(ctx, &models.ExchangeRate{
		UserID: "u1", Month: "2025-06", Currency: "USD", Rate: money.NewDecimal(decimal.NewFromInt(112)),
	}))

	// Re-upserting either scope replaces its own row only.
	require.NoError(t, svc.UpsertRate(ctx, &models.ExchangeRate{
		Month: "2025-06", Currency: "USD", Rate: money.NewDecimal(decimal.NewFromInt(111)),
	}))

	rates, err := svc.ListRates(ctx, "u1", "2025-06")
	require.NoError(t, err)
	require.Len(t, rates, 2, "one global row and one user row, no duplicates")

	rate, err := svc.ResolveRate(ctx, "u1", "2025-06", "USD")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(112)))

	rate, err = svc.ResolveRate(ctx, "u2", "2025-06", "USD")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(111)))
}

func TestRateKeepsFullPrecisionThroughStorage(t *testing.T) {
	svc, _ := newFXFixture(t)
	ctx := context.Background()

	exact := decimal.RequireFromString("84.123456789012345678")
	require.NoError(t, svc.UpsertRate(ctx, &models.ExchangeRate{
		Month: "2025-06", Currency: "USD", Rate: money.NewDecimal(exact),
	}))

	rate, err := svc.ResolveRate(ctx, "u1", "2025-06", "USD")
	require.NoError(t, err)
	assert.True(t, rate.Equal(exact), "stored %s, resolved %s", exact, rate)
}

func TestUpsertRateValidation(t *testing.T) {
	svc, _ := newFXFixture(t)
	ctx := context.Background()

	err := svc.UpsertRate(ctx, &models.ExchangeRate{
		Month: "2025-06", Currency: "USD", Rate: money.NewDecimal(decimal.NewFromInt(-1)),
	})
	assert.Error(t, err, "negative rate must be rejected")

	err = svc.UpsertRate(ctx, &models.ExchangeRate{
		Month: "2025-06", Currency: money.BaseCurrency, Rate: money.NewDecimal(decimal.NewFromInt(1)),
	})
	assert.Error(t, err, "base currency needs no rate")
}

func TestConvertWithRateIgnoresRateForBase(t *testing.T) {
	amount := money.MustParse("42")
	got := ConvertWithRate(amount, money.BaseCurrency, decimal.NewFromInt(9999))
	assert.True(t, got.Equal(amount))

	got = ConvertWithRate(money.MustParse("2"), "USD", decimal.NewFromInt(110))
	assert.Equal(t, "220.00", got.DisplayString())
}
