package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"takatrack/internal/models"
	"takatrack/internal/money"
	"takatrack/internal/repositories"
)

var (
	weeksPerYear  = decimal.NewFromInt(52)
	monthsPerYear = decimal.NewFromInt(12)
)

// MonthlyEquivalent normalizes an obligation's stated amount and frequency
// into a monthly-equivalent amount. Weekly charges spread 52 weeks over 12
// months (×52÷12); this factor is the product's documented policy and must
// not be "corrected" to ×4.33, which would silently shift historical
// summaries.
func MonthlyEquivalent(amount money.Money, frequency string) (money.Money, error) {
	switch frequency {
	case models.FrequencyMonthly:
		return amount, nil
	case models.FrequencyYearly:
		return amount.Div(monthsPerYear)
	case models.FrequencyWeekly:
		return amount.Mul(weeksPerYear).Div(monthsPerYear)
	default:
		return money.Money{}, fmt.Errorf("unknown frequency: %s", frequency)
	}
}

type recurringService struct {
	recurring repositories.RecurringRepository
	fx        FXService
	logger    *zap.Logger
}

// NewRecurringService creates a new recurring obligation service
func NewRecurringService(recurring repositories.RecurringRepository, fx FXService, logger *zap.Logger) RecurringService {
	return &recurringService{recurring: recurring, fx: fx, logger: logger}
}

func (s *recurringService) Create(ctx context.Context, rec *models.RecurringExpense) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("invalid recurring expense: %w", err)
	}
	return s.recurring.Create(ctx, rec)
}

func (s *recurringService) List(ctx context.Context, userID string) ([]*models.RecurringExpense, error) {
	return s.recurring.List(ctx, userID)
}

func (s *recurringService) Update(ctx context.Context, rec *models.RecurringExpense) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("invalid recurring expense: %w", err)
	}
	return s.recurring.Update(ctx, rec)
}

// ProcessDue materializes one realized expense per obligation for the month
// containing now. The LastProcessedMonth stamp makes re-runs within a month
// no-ops, so the caller's schedule can be as coarse or eager as it likes.
// Conversion to the base currency goes through the hard-fail path: a missing
// rate skips the obligation and is reported, never guessed around.
func (s *recurringService) ProcessDue(ctx context.Context, now time.Time) (int, error) {
	month := models.MonthKey(now)
	start, end, err := models.MonthPeriod(month)
	if err != nil {
		return 0, err
	}

	recs, err := s.recurring.ListActive(ctx)
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, rec := range recs {
		if !rec.ActiveDuring(start, end) {
			continue
		}
		if rec.LastProcessedMonth != nil && *rec.LastProcessedMonth >= month {
			continue
		}

		charge, err := MonthlyEquivalent(rec.Amount, rec.Frequency)
		if err != nil {
			return processed, err
		}
		chargeBDT, err := s.fx.ToBase(ctx, rec.UserID, month, charge, rec.Currency)
		if err != nil {
			s.logger.Warn("skipping recurring charge without exchange rate",
				zap.String("recurring_id", rec.ID),
				zap.String("currency", rec.Currency),
				zap.String("month", month),
				zap.Error(err))
			continue
		}

		description := fmt.Sprintf("%s (recurring)", rec.Name)
		expense := &models.Expense{
			UserID:      rec.UserID,
			Category:    rec.Category,
			Description: &description,
			Amount:      charge,
			Currency:    rec.Currency,
			AmountBDT:   chargeBDT,
			Date:        start,
			IsRecurring: true,
			RecurringID: &rec.ID,
		}
		if err := s.recurring.MaterializeCharge(ctx, rec, expense, month); err != nil {
			return processed, err
		}
		processed++
	}

	if processed > 0 {
		s.logger.Info("materialized recurring charges",
			zap.String("month", month),
			zap.Int("count", processed))
	}
	return processed, nil
}
