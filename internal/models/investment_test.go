package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"takatrack/internal/money"
)

func TestInvestment_Sellable(t *testing.T) {
	tests := []struct {
		name            string
		transactionType string
		status          string
		expected        bool
	}{
		{name: "active buy", transactionType: InvestmentBuy, status: StatusActive, expected: true},
		{name: "matured buy", transactionType: InvestmentBuy, status: StatusMatured, expected: true},
		{name: "returned buy", transactionType: InvestmentBuy, status: StatusReturned, expected: true},
		{name: "sold buy", transactionType: InvestmentBuy, status: StatusSold, expected: false},
		{name: "sell record", transactionType: InvestmentSell, status: StatusSold, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &Investment{TransactionType: tt.transactionType, Status: tt.status}
			assert.Equal(t, tt.expected, inv.Sellable())
		})
	}
}

func TestInvestment_Valuation(t *testing.T) {
	cost := money.MustParse("10000")

	inv := &Investment{CostBasis: cost}
	assert.True(t, inv.Valuation().Equal(cost), "position without a valuation is carried at cost")

	marked := money.MustParse("12500")
	inv.CurrentValue = &marked
	assert.True(t, inv.Valuation().Equal(marked))
}

func TestInvestment_Validate(t *testing.T) {
	valid := &Investment{
		UserID:          "u1",
		Name:            "DSE index fund",
		Type:            "stock",
		TransactionType: InvestmentBuy,
		Status:          StatusActive,
		CostBasis:       money.MustParse("5000"),
		PurchaseDate:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, valid.Validate())

	bad := *valid
	bad.TransactionType = "swap"
	assert.Error(t, bad.Validate())

	bad = *valid
	bad.Status = "pending"
	assert.Error(t, bad.Validate())
}

func TestInvestmentReturn_Validate(t *testing.T) {
	r := &InvestmentReturn{
		UserID:     "u1",
		Amount:     money.MustParse("250"),
		ReturnType: ReturnDividend,
		Date:       time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, r.Validate())

	r.ReturnType = "bonus"
	assert.Error(t, r.Validate())
}
