package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRateTable(t *testing.T) {
	r := DefaultRateTable()
	require.NoError(t, r.Validate())
	assert.True(t, decimal.RequireFromString("30.4").Equal(r.RideCostRate()))
	assert.True(t, decimal.NewFromInt(5700).Equal(r.Rate(Tier3)))
	assert.True(t, r.Rate(Tier(7)).IsZero())
}

func TestRateTableValidate(t *testing.T) {
	tests := map[string]func(r *RateTable){
		"zero base unit": func(r *RateTable) { r.BaseUnit = 0 },
		"missing tier":   func(r *RateTable) { delete(r.TierRates, Tier4) },
		"negative tier":  func(r *RateTable) { r.TierRates[Tier2] = decimal.NewFromInt(-1) },
		"negative ride":  func(r *RateTable) { r.RidePrize = decimal.NewFromInt(-1) },
		"zero discount":  func(r *RateTable) { r.DiscountRate = decimal.Zero },
		"big discount":   func(r *RateTable) { r.DiscountRate = decimal.RequireFromString("1.01") },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			r := DefaultRateTable()
			mutate(&r)
			require.ErrorIs(t, r.Validate(), ErrInvalidRates)
		})
	}
}

func TestSumTotals(t *testing.T) {
	totals := SumTotals([]SettlementResult{
		{Cost: 47, Prize: decimal.NewFromInt(530)},
		{Cost: 94, Prize: decimal.Zero},
	})
	assert.Equal(t, int64(141), totals.Cost)
	assert.True(t, decimal.NewFromInt(530).Equal(totals.Prize))
	assert.True(t, decimal.NewFromInt(389).Equal(totals.Profit))

	empty := SumTotals(nil)
	assert.True(t, empty.Profit.IsZero())
}
