package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	apperrors "takatrack/internal/errors"
	"takatrack/internal/models"
	"takatrack/internal/money"
	"takatrack/internal/repositories"
)

// ConvertWithRate converts amount in currency to the base currency with an
// already-resolved rate (units of base per 1 unit of currency). Base-currency
// amounts pass through untouched, whatever the rate says.
func ConvertWithRate(amount money.Money, currency string, rate decimal.Decimal) money.Money {
	if currency == money.BaseCurrency {
		return amount
	}
	return amount.Mul(rate)
}

// EstimatePolicy is an opt-in, best-effort rate table for read-only views.
// It is never consulted by ToBase: mutations must fail loudly on a missing
// rate, while dashboards may show an approximation. Callers log when a
// fallback rate is used.
type EstimatePolicy struct {
	rates map[string]decimal.Decimal
}

// DefaultEstimatePolicy returns the static fallback table for the common
// foreign currencies. Values are coarse BDT approximations, not market data.
func DefaultEstimatePolicy() EstimatePolicy {
	return EstimatePolicy{
		rates: map[string]decimal.Decimal{
			"USD": decimal.NewFromInt(110),
			"EUR": decimal.NewFromInt(120),
			"GBP": decimal.NewFromInt(140),
		},
	}
}

// Rate returns the fallback rate for a currency, if the table carries one.
func (p EstimatePolicy) Rate(currency string) (decimal.Decimal, bool) {
	r, ok := p.rates[currency]
	return r, ok
}

type fxService struct {
	rates repositories.ExchangeRateRepository
}

// NewFXService creates a new FX service
func NewFXService(rates repositories.ExchangeRateRepository) FXService {
	return &fxService{rates: rates}
}

func (s *fxService) ResolveRate(ctx context.Context, userID, month, currency string) (decimal.Decimal, error) {
	rate, err := s.rates.Resolve(ctx, userID, month, currency)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if rate == nil {
		return decimal.Decimal{}, &apperrors.ErrMissingExchangeRate{Currency: currency, Month: month}
	}
	return rate.Rate.Decimal, nil
}

func (s *fxService) ToBase(ctx context.Context, userID, month string, amount money.Money, currency string) (money.Money, error) {
	if currency == money.BaseCurrency {
		return amount, nil
	}
	rate, err := s.ResolveRate(ctx, userID, month, currency)
	if err != nil {
		return money.Money{}, err
	}
	return amount.Mul(rate), nil
}

func (s *fxService) UpsertRate(ctx context.Context, rate *models.ExchangeRate) error {
	if err := rate.Validate(); err != nil {
		return fmt.Errorf("invalid exchange rate: %w", err)
	}
	return s.rates.Upsert(ctx, rate)
}

func (s *fxService) ListRates(ctx context.Context, userID, month string) ([]*models.ExchangeRate, error) {
	return s.rates.ListForMonth(ctx, userID, month)
}
