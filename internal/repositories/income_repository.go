package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"takatrack/internal/db"
	apperrors "takatrack/internal/errors"
	"takatrack/internal/models"
)

type incomeRepository struct {
	db *db.DB
}

// NewIncomeRepository creates a new income repository
func NewIncomeRepository(database *db.DB) IncomeRepository {
	return &incomeRepository{db: database}
}

func (r *incomeRepository) Create(ctx context.Context, income *models.Income) error {
	if income.ID == "" {
		income.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(income).Error; err != nil {
		return fmt.Errorf("failed to create income: %w", err)
	}
	return nil
}

func (r *incomeRepository) ListForPeriod(ctx context.Context, userID string, start, end time.Time) ([]*models.Income, error) {
	var incomes []*models.Income
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date DESC").
		Find(&incomes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	return incomes, nil
}

func (r *incomeRepository) Delete(ctx context.Context, userID, id string) error {
	result := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(&models.Income{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete income: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Resource: "income", ID: id}
	}
	return nil
}
