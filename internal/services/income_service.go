package services

import (
	"context"
	"fmt"

	"takatrack/internal/models"
	"takatrack/internal/repositories"
)

type incomeService struct {
	incomes repositories.IncomeRepository
}

// NewIncomeService creates a new income service. Income is recorded directly
// in the base currency, so no conversion happens here.
func NewIncomeService(incomes repositories.IncomeRepository) IncomeService {
	return &incomeService{incomes: incomes}
}

func (s *incomeService) Create(ctx context.Context, income *models.Income) error {
	if err := income.Validate(); err != nil {
		return fmt.Errorf("invalid income: %w", err)
	}
	return s.incomes.Create(ctx, income)
}

func (s *incomeService) ListForMonth(ctx context.Context, userID, month string) ([]*models.Income, error) {
	start, end, err := models.MonthPeriod(month)
	if err != nil {
		return nil, err
	}
	return s.incomes.ListForPeriod(ctx, userID, start, end)
}

func (s *incomeService) Delete(ctx context.Context, userID, id string) error {
	return s.incomes.Delete(ctx, userID, id)
}
