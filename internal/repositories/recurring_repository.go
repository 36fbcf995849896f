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

type recurringRepository struct {
	db *db.DB
}

// NewRecurringRepository creates a new recurring obligation repository
func NewRecurringRepository(database *db.DB) RecurringRepository {
	return &recurringRepository{db: database}
}

func (r *recurringRepository) Create(ctx context.Context, rec *models.RecurringExpense) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to create recurring expense: %w", err)
	}
	return nil
}

func (r *recurringRepository) GetByID(ctx context.Context, userID, id string) (*models.RecurringExpense, error) {
	var rec models.RecurringExpense
	err := r.db.WithContext(ctx).First(&rec, "user_id = ? AND id = ?", userID, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.ErrNotFound{Resource: "recurring expense", ID: id}
		}
		return nil, fmt.Errorf("failed to get recurring expense: %w", err)
	}
	return &rec, nil
}

func (r *recurringRepository) List(ctx context.Context, userID string) ([]*models.RecurringExpense, error) {
	var recs []*models.RecurringExpense
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring expenses: %w", err)
	}
	return recs, nil
}

func (r *recurringRepository) ListActive(ctx context.Context) ([]*models.RecurringExpense, error) {
	var recs []*models.RecurringExpense
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active recurring expenses: %w", err)
	}
	return recs, nil
}

func (r *recurringRepository) ListActiveDuring(ctx context.Context, userID string, start, end time.Time) ([]*models.RecurringExpense, error) {
	var recs []*models.RecurringExpense
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND active = ? AND start_date <= ?", userID, true, end).
		Where("end_date IS NULL OR end_date >= ?", start).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring expenses for window: %w", err)
	}
	return recs, nil
}

// Update writes an explicit column list so zero values persist; without it a
// deactivation (Active=false) or a cleared end date would be silently
// skipped by the struct update.
func (r *recurringRepository) Update(ctx context.Context, rec *models.RecurringExpense) error {
	result := r.db.WithContext(ctx).
		Model(&models.RecurringExpense{}).
		Where("user_id = ? AND id = ?", rec.UserID, rec.ID).
		Select("name", "category", "amount", "currency", "frequency",
			"start_date", "end_date", "active").
		Updates(rec)
	if result.Error != nil {
		return fmt.Errorf("failed to update recurring expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Resource: "recurring expense", ID: rec.ID}
	}
	return nil
}

// MaterializeCharge appends the realized expense for one elapsed month and
// stamps LastProcessedMonth in the same transaction, so a crash between the
// two writes can never double-charge the month.
func (r *recurringRepository) MaterializeCharge(ctx context.Context, rec *models.RecurringExpense, expense *models.Expense, month string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if expense.ID == "" {
			expense.ID = uuid.NewString()
		}
		if err := tx.Create(expense).Error; err != nil {
			return fmt.Errorf("failed to create materialized expense: %w", err)
		}
		if err := tx.Model(&models.RecurringExpense{}).
			Where("id = ?", rec.ID).
			Update("last_processed_month", month).Error; err != nil {
			return fmt.Errorf("failed to stamp last processed month: %w", err)
		}
		rec.LastProcessedMonth = &month
		return nil
	})
}
