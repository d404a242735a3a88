package converter

import (
	dto "lotto_backend/internal/api/dto/wager"
	"lotto_backend/internal/model"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBetRequest(t *testing.T) {
	got := ToBetRequest(dto.BetRequest{Kind: "column", Columns: [][]int{{1, 2}, {3}}, Tiers: []int{2, 3}, UnitAmount: 5})
	assert.Equal(t, model.BetColumn, got.Kind)
	assert.Equal(t, []model.Tier{model.Tier2, model.Tier3}, got.Tiers)
	assert.Nil(t, got.DiscountRate)
}

func TestRateTableRoundTrip(t *testing.T) {
	assert.Nil(t, ToRateTable(nil))

	table := model.DefaultRateTable()
	back := ToRateTable(&dto.Rates{
		BaseUnit:     table.BaseUnit,
		DiscountRate: table.DiscountRate,
		TierRates:    ToRatesResponse(table).TierRates,
		RidePrize:    table.RidePrize,
		RideCost:     table.RideCost,
	})
	require.NotNil(t, back)
	require.NoError(t, back.Validate())
	assert.True(t, decimal.NewFromInt(5700).Equal(back.Rate(model.Tier3)))
}

func TestToWagerResponse(t *testing.T) {
	bet, err := model.NewColumnBet([][]int{{3, 1}, {2}}, []model.Tier{model.Tier2}, 10, decimal.RequireFromString("0.78"))
	require.NoError(t, err)

	res := ToWagerResponse(model.Wager{ID: "w", Bet: bet, Cost: 16, Touches: map[model.Tier]int64{model.Tier2: 2}})
	assert.Equal(t, [][]int{{1, 3}, {2}}, res.Columns)
	assert.Equal(t, []int{1, 2, 3}, res.Numbers)
	assert.Equal(t, []int{2}, res.Tiers)
	require.NotNil(t, res.DiscountRate)
	assert.Equal(t, "0.78", *res.DiscountRate)
	assert.Equal(t, int64(2), res.TotalTouches)
	assert.Nil(t, res.TailDigit)
	assert.Nil(t, res.CreatedAt)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-16")
	require.NoError(t, err)
	assert.Equal(t, model.DrawZone, d.Location())
	assert.Equal(t, time.October, d.Month())

	_, err = ParseDate("2026/10/16")
	assert.Error(t, err)
}
