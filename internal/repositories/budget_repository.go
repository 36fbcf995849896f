package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"takatrack/internal/db"
	apperrors "takatrack/internal/errors"
	"takatrack/internal/models"
)

type budgetRepository struct {
	db *db.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(database *db.DB) BudgetRepository {
	return &budgetRepository{db: database}
}

// Upsert creates or replaces the budgeted amount for the (user, category,
// month) key.
func (r *budgetRepository) Upsert(ctx context.Context, budget *models.Budget) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Budget
		err := tx.First(&existing, "user_id = ? AND category = ? AND month = ?",
			budget.UserID, budget.Category, budget.Month).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to look up budget: %w", err)
			}
			if budget.ID == "" {
				budget.ID = uuid.NewString()
			}
			if err := tx.Create(budget).Error; err != nil {
				return fmt.Errorf("failed to create budget: %w", err)
			}
			return nil
		}

		budget.ID = existing.ID
		if err := tx.Model(&existing).Update("amount", budget.Amount).Error; err != nil {
			return fmt.Errorf("failed to update budget: %w", err)
		}
		return nil
	})
}

func (r *budgetRepository) ListForMonth(ctx context.Context, userID, month string) ([]*models.Budget, error) {
	var budgets []*models.Budget
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month).
		Order("category").
		Find(&budgets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

func (r *budgetRepository) Delete(ctx context.Context, userID, id string) error {
	result := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(&models.Budget{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Resource: "budget", ID: id}
	}
	return nil
}
