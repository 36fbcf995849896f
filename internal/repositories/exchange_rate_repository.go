package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"takatrack/internal/db"
	"takatrack/internal/models"
)

type exchangeRateRepository struct {
	db *db.DB
}

// NewExchangeRateRepository creates a new exchange rate repository
func NewExchangeRateRepository(database *db.DB) ExchangeRateRepository {
	return &exchangeRateRepository{db: database}
}

// Upsert creates or replaces the rate for the (user, month, currency) key.
// The write rides the unique index through ON CONFLICT, so two concurrent
// upserts of the same key cannot leave duplicate rows.
func (r *exchangeRateRepository) Upsert(ctx context.Context, rate *models.ExchangeRate) error {
	if rate.ID == "" {
		rate.ID = uuid.NewString()
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "month"}, {Name: "currency"}},
			DoUpdates: clause.AssignmentColumns([]string{"rate", "updated_at"}),
		}).
		Create(rate).Error
	if err != nil {
		return fmt.Errorf("failed to upsert exchange rate: %w", err)
	}
	return nil
}

// Resolve returns the effective rate for (user, month, currency): the
// user-specific override when present, otherwise the global rate, otherwise
// (nil, nil).
func (r *exchangeRateRepository) Resolve(ctx context.Context, userID, month, currency string) (*models.ExchangeRate, error) {
	var rate models.ExchangeRate
	err := r.db.WithContext(ctx).
		First(&rate, "user_id = ? AND month = ? AND currency = ?", userID, month, currency).Error
	if err == nil {
		return &rate, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to resolve user exchange rate: %w", err)
	}

	err = r.db.WithContext(ctx).
		First(&rate, "user_id = '' AND month = ? AND currency = ?", month, currency).Error
	if err == nil {
		return &rate, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to resolve global exchange rate: %w", err)
	}
	return nil, nil
}

func (r *exchangeRateRepository) ListForMonth(ctx context.Context, userID, month string) ([]*models.ExchangeRate, error) {
	var rates []*models.ExchangeRate
	err := r.db.WithContext(ctx).
		Where("month = ?", month).
		Where("user_id = ? OR user_id = ''", userID).
		Order("currency").
		Find(&rates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	return rates, nil
}
