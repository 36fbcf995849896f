package services

import (
	"context"
	"fmt"
	"time"

	apperrors "takatrack/internal/errors"
	"takatrack/internal/models"
	"takatrack/internal/money"
	"takatrack/internal/repositories"
)

// activeBuyStatuses are the position states counted as still invested.
var activeBuyStatuses = []string{models.StatusActive, models.StatusMatured, models.StatusReturned}

type investmentService struct {
	investments repositories.InvestmentRepository
	fx          FXService
}

// NewInvestmentService creates a new investment service
func NewInvestmentService(investments repositories.InvestmentRepository, fx FXService) InvestmentService {
	return &investmentService{investments: investments, fx: fx}
}

// Create stores a position with every amount denominated in the base
// currency. A foreign-currency entry is converted once here, using the
// purchase month's rate, so gain math downstream never mixes currencies.
// A missing rate fails the request.
func (s *investmentService) Create(ctx context.Context, inv *models.Investment) error {
	if inv.TransactionType == "" {
		inv.TransactionType = models.InvestmentBuy
	}
	if inv.Status == "" {
		inv.Status = models.StatusActive
	}
	if inv.Currency == "" {
		inv.Currency = money.BaseCurrency
	}
	if err := inv.Validate(); err != nil {
		return fmt.Errorf("invalid investment: %w", err)
	}

	if inv.Currency != money.BaseCurrency {
		month := models.MonthKey(inv.PurchaseDate)
		costBDT, err := s.fx.ToBase(ctx, inv.UserID, month, inv.CostBasis, inv.Currency)
		if err != nil {
			return err
		}
		inv.CostBasis = costBDT
		if inv.CurrentValue != nil {
			valueBDT, err := s.fx.ToBase(ctx, inv.UserID, month, *inv.CurrentValue, inv.Currency)
			if err != nil {
				return err
			}
			inv.CurrentValue = &valueBDT
		}
		inv.Currency = money.BaseCurrency
	}

	return s.investments.Create(ctx, inv)
}

func (s *investmentService) Get(ctx context.Context, userID, id string) (*models.Investment, error) {
	return s.investments.GetByID(ctx, userID, id)
}

func (s *investmentService) List(ctx context.Context, userID string) ([]*models.Investment, error) {
	return s.investments.List(ctx, userID)
}

// UpdateValuation writes only the current_value column; nothing else on the
// position is touched.
func (s *investmentService) UpdateValuation(ctx context.Context, userID, id string, value money.Money) error {
	return s.investments.UpdateValuation(ctx, userID, id, value)
}

// Sell closes a buy position. It creates a distinct sell record carrying the
// copied cost basis, the proceeds converted to the base currency with the
// sale month's rate, and the realized gain fixed at this moment. The buy row
// only flips to sold; its cost basis is never touched and the gain is never
// written onto it.
func (s *investmentService) Sell(ctx context.Context, userID, id string, proceeds money.Money, currency string, saleDate time.Time) (*models.Investment, error) {
	buy, err := s.investments.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if buy.Status == models.StatusSold {
		return nil, &apperrors.ErrAlreadySold{PositionID: id}
	}
	if !buy.Sellable() {
		return nil, &apperrors.ErrValidation{Field: "id", Message: "not a sellable buy position"}
	}

	saleMonth := models.MonthKey(saleDate)
	proceedsBDT, err := s.fx.ToBase(ctx, userID, saleMonth, proceeds, currency)
	if err != nil {
		return nil, err
	}

	realized := proceedsBDT.Sub(buy.CostBasis)
	sell := &models.Investment{
		UserID:          userID,
		Name:            buy.Name,
		Type:            buy.Type,
		TransactionType: models.InvestmentSell,
		Status:          models.StatusSold,
		BuyID:           &buy.ID,
		CostBasis:       buy.CostBasis,
		Currency:        money.BaseCurrency,
		SaleProceeds:    &proceedsBDT,
		RealizedGain:    &realized,
		PurchaseDate:    buy.PurchaseDate,
		SaleDate:        &saleDate,
	}

	if err := s.investments.Sell(ctx, buy, sell); err != nil {
		return nil, err
	}
	return sell, nil
}

func (s *investmentService) RecordReturn(ctx context.Context, ret *models.InvestmentReturn) error {
	if err := ret.Validate(); err != nil {
		return fmt.Errorf("invalid investment return: %w", err)
	}
	return s.investments.CreateReturn(ctx, ret)
}

// Portfolio aggregates open positions, sell records and return events into
// realized, unrealized and total gain figures, plus per-type rollups.
func (s *investmentService) Portfolio(ctx context.Context, userID string) (*models.PortfolioSummary, error) {
	buys, err := s.investments.ListBuys(ctx, userID, activeBuyStatuses)
	if err != nil {
		return nil, err
	}
	sells, err := s.investments.ListSells(ctx, userID)
	if err != nil {
		return nil, err
	}
	returns, err := s.investments.ListReturns(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &models.PortfolioSummary{
		ByType: make(map[string]*models.PortfolioTypeSummary),
	}
	typeOf := func(t string) *models.PortfolioTypeSummary {
		ts, ok := summary.ByType[t]
		if !ok {
			ts = &models.PortfolioTypeSummary{Type: t}
			summary.ByType[t] = ts
		}
		return ts
	}

	for _, buy := range buys {
		valuation := buy.Valuation()
		summary.TotalInvested = summary.TotalInvested.Add(buy.CostBasis)
		summary.TotalCurrentValue = summary.TotalCurrentValue.Add(valuation)

		ts := typeOf(buy.Type)
		ts.Positions++
		ts.TotalInvested = ts.TotalInvested.Add(buy.CostBasis)
		ts.TotalCurrentValue = ts.TotalCurrentValue.Add(valuation)
	}

	// Realized gain was fixed at sale time on each sell record; it is summed
	// as stored, never recomputed from current data.
	for _, sell := range sells {
		if sell.RealizedGain == nil {
			continue
		}
		summary.TotalRealizedGain = summary.TotalRealizedGain.Add(*sell.RealizedGain)
		ts := typeOf(sell.Type)
		ts.TotalRealizedGain = ts.TotalRealizedGain.Add(*sell.RealizedGain)
	}

	for _, ret := range returns {
		summary.TotalReturns = summary.TotalReturns.Add(ret.Amount)
	}
	if len(returns) > 0 {
		// Per-type attribution needs the position link; unlinked returns stay
		// in the portfolio-wide total only.
		byID := make(map[string]*models.Investment, len(buys))
		for _, buy := range buys {
			byID[buy.ID] = buy
		}
		for _, ret := range returns {
			if ret.InvestmentID == nil {
				continue
			}
			if pos, ok := byID[*ret.InvestmentID]; ok {
				typeOf(pos.Type).TotalReturns = typeOf(pos.Type).TotalReturns.Add(ret.Amount)
			}
		}
	}

	summary.UnrealizedGain = summary.TotalCurrentValue.Sub(summary.TotalInvested)
	summary.TotalGain = summary.TotalRealizedGain.Add(summary.UnrealizedGain)
	for _, ts := range summary.ByType {
		ts.UnrealizedGain = ts.TotalCurrentValue.Sub(ts.TotalInvested)
		ts.TotalGain = ts.TotalRealizedGain.Add(ts.UnrealizedGain)
	}

	return summary, nil
}
