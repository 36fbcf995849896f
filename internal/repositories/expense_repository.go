package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"takatrack/internal/db"
	apperrors "takatrack/internal/errors"
	"takatrack/internal/models"
)

type expenseRepository struct {
	db *db.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(database *db.DB) ExpenseRepository {
	return &expenseRepository{db: database}
}

func (r *expenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

func (r *expenseRepository) GetByID(ctx context.Context, userID, id string) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.WithContext(ctx).First(&expense, "user_id = ? AND id = ?", userID, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.ErrNotFound{Resource: "expense", ID: id}
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return &expense, nil
}

func (r *expenseRepository) ListForPeriod(ctx context.Context, userID string, start, end time.Time) ([]*models.Expense, error) {
	var expenses []*models.Expense
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

func (r *expenseRepository) ListForCategory(ctx context.Context, userID, category string, start, end time.Time) ([]*models.Expense, error) {
	var expenses []*models.Expense
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND category = ? AND date >= ? AND date <= ?", userID, category, start, end).
		Order("date DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for category: %w", err)
	}
	return expenses, nil
}

// Update writes an explicit column list so zero values (a cleared
// description, is_recurring flipped off) persist instead of being skipped.
func (r *expenseRepository) Update(ctx context.Context, expense *models.Expense) error {
	result := r.db.WithContext(ctx).
		Model(&models.Expense{}).
		Where("user_id = ? AND id = ?", expense.UserID, expense.ID).
		Select("category", "description", "amount", "currency", "amount_bdt",
			"date", "is_recurring", "recurring_id").
		Updates(expense)
	if result.Error != nil {
		return fmt.Errorf("failed to update expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Resource: "expense", ID: expense.ID}
	}
	return nil
}

func (r *expenseRepository) Delete(ctx context.Context, userID, id string) error {
	result := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(&models.Expense{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Resource: "expense", ID: id}
	}
	return nil
}
