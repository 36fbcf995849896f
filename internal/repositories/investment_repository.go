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
	"takatrack/internal/money"
)

type investmentRepository struct {
	db *db.DB
}

// NewInvestmentRepository creates a new investment repository
func NewInvestmentRepository(database *db.DB) InvestmentRepository {
	return &investmentRepository{db: database}
}

func (r *investmentRepository) Create(ctx context.Context, inv *models.Investment) error {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(inv).Error; err != nil {
		return fmt.Errorf("failed to create investment: %w", err)
	}
	return nil
}

func (r *investmentRepository) GetByID(ctx context.Context, userID, id string) (*models.Investment, error) {
	var inv models.Investment
	err := r.db.WithContext(ctx).First(&inv, "user_id = ? AND id = ?", userID, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.ErrNotFound{Resource: "investment", ID: id}
		}
		return nil, fmt.Errorf("failed to get investment: %w", err)
	}
	return &inv, nil
}

func (r *investmentRepository) List(ctx context.Context, userID string) ([]*models.Investment, error) {
	var invs []*models.Investment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchase_date DESC").
		Find(&invs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	return invs, nil
}

func (r *investmentRepository) ListBuys(ctx context.Context, userID string, statuses []string) ([]*models.Investment, error) {
	var invs []*models.Investment
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND transaction_type = ?", userID, models.InvestmentBuy)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	if err := query.Find(&invs).Error; err != nil {
		return nil, fmt.Errorf("failed to list buy positions: %w", err)
	}
	return invs, nil
}

func (r *investmentRepository) ListSells(ctx context.Context, userID string) ([]*models.Investment, error) {
	var invs []*models.Investment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND transaction_type = ?", userID, models.InvestmentSell).
		Find(&invs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sell records: %w", err)
	}
	return invs, nil
}

func (r *investmentRepository) UpdateValuation(ctx context.Context, userID, id string, value money.Money) error {
	result := r.db.WithContext(ctx).
		Model(&models.Investment{}).
		Where("user_id = ? AND id = ?", userID, id).
		Update("current_value", value)
	if result.Error != nil {
		return fmt.Errorf("failed to update investment valuation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Resource: "investment", ID: id}
	}
	return nil
}

// Sell flips the buy's status to sold and inserts the linked sell record in
// one transaction, so a concurrent reader never observes one without the
// other. The status guard re-checks inside the transaction to keep a double
// sell from racing past the service-level check.
func (r *investmentRepository) Sell(ctx context.Context, buy, sell *models.Investment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Investment{}).
			Where("id = ? AND status IN ?", buy.ID,
				[]string{models.StatusActive, models.StatusMatured, models.StatusReturned}).
			Updates(map[string]interface{}{
				"status":    models.StatusSold,
				"sale_date": sell.SaleDate,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to mark position sold: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return &apperrors.ErrAlreadySold{PositionID: buy.ID}
		}

		if sell.ID == "" {
			sell.ID = uuid.NewString()
		}
		if err := tx.Create(sell).Error; err != nil {
			return fmt.Errorf("failed to create sell record: %w", err)
		}
		return nil
	})
}

func (r *investmentRepository) CreateReturn(ctx context.Context, ret *models.InvestmentReturn) error {
	if ret.ID == "" {
		ret.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(ret).Error; err != nil {
		return fmt.Errorf("failed to create investment return: %w", err)
	}
	return nil
}

func (r *investmentRepository) ListReturns(ctx context.Context, userID string) ([]*models.InvestmentReturn, error) {
	var rets []*models.InvestmentReturn
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&rets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list investment returns: %w", err)
	}
	return rets, nil
}
