package services

import (
	"context"
	"fmt"

	"takatrack/internal/models"
	"takatrack/internal/repositories"
)

type expenseService struct {
	expenses repositories.ExpenseRepository
	fx       FXService
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenses repositories.ExpenseRepository, fx FXService) ExpenseService {
	return &expenseService{expenses: expenses, fx: fx}
}

// Create validates the expense and fixes its base-currency amount from the
// rate resolved for the expense's month. A missing rate fails the request;
// persisted data never carries a guessed conversion.
func (s *expenseService) Create(ctx context.Context, expense *models.Expense) error {
	if err := expense.Validate(); err != nil {
		return fmt.Errorf("invalid expense: %w", err)
	}

	month := models.MonthKey(expense.Date)
	amountBDT, err := s.fx.ToBase(ctx, expense.UserID, month, expense.Amount, expense.Currency)
	if err != nil {
		return err
	}
	expense.AmountBDT = amountBDT

	return s.expenses.Create(ctx, expense)
}

func (s *expenseService) Get(ctx context.Context, userID, id string) (*models.Expense, error) {
	return s.expenses.GetByID(ctx, userID, id)
}

func (s *expenseService) ListForMonth(ctx context.Context, userID, month string) ([]*models.Expense, error) {
	start, end, err := models.MonthPeriod(month)
	if err != nil {
		return nil, err
	}
	return s.expenses.ListForPeriod(ctx, userID, start, end)
}

// Update re-derives the base-currency amount only when the entered amount or
// currency changed; an untouched conversion stays fixed at its creation-time
// rate.
func (s *expenseService) Update(ctx context.Context, expense *models.Expense) error {
	if err := expense.Validate(); err != nil {
		return fmt.Errorf("invalid expense: %w", err)
	}

	existing, err := s.expenses.GetByID(ctx, expense.UserID, expense.ID)
	if err != nil {
		return err
	}

	if !existing.Amount.Equal(expense.Amount) || existing.Currency != expense.Currency {
		month := models.MonthKey(expense.Date)
		amountBDT, err := s.fx.ToBase(ctx, expense.UserID, month, expense.Amount, expense.Currency)
		if err != nil {
			return err
		}
		expense.AmountBDT = amountBDT
	} else {
		expense.AmountBDT = existing.AmountBDT
	}

	return s.expenses.Update(ctx, expense)
}

func (s *expenseService) Delete(ctx context.Context, userID, id string) error {
	return s.expenses.Delete(ctx, userID, id)
}
