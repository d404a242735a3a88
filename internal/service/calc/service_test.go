package calc

import (
	"lotto_backend/internal/model"
	"lotto_backend/internal/service/wager"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *serv {
	t.Helper()
	engine, err := wager.NewEngine(model.DefaultRateTable())
	require.NoError(t, err)
	return NewCalcService(engine).(*serv)
}

var connectReq = model.BetRequest{
	Kind:       model.BetConnect,
	Numbers:    []int{1, 5, 12, 20},
	Tiers:      []model.Tier{model.Tier2},
	UnitAmount: 10,
}

func TestQuote(t *testing.T) {
	s := newTestService(t)

	w, err := s.Quote(connectReq, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(47), w.Cost)
	assert.Equal(t, int64(6), w.TotalTouches())
	assert.Empty(t, w.ID)

	rates := model.DefaultRateTable()
	rates.DiscountRate = decimal.NewFromInt(1)
	w, err = s.Quote(connectReq, &rates)
	require.NoError(t, err)
	assert.Equal(t, int64(60), w.Cost)

	eleven := 11
	_, err = s.Quote(model.BetRequest{Kind: model.BetTail, TailDigit: &eleven, UnitAmount: 10}, nil)
	require.ErrorIs(t, err, model.ErrInvalidBet)
}

func TestCheck(t *testing.T) {
	s := newTestService(t)

	res, err := s.Check(connectReq, []int{31, 5, 30, 1, 32}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5}, res.Matched)
	assert.True(t, decimal.NewFromInt(530).Equal(res.Prize))
	assert.True(t, decimal.NewFromInt(483).Equal(res.Profit()))

	_, err = s.Check(connectReq, []int{1, 2, 3}, nil)
	require.ErrorIs(t, err, model.ErrInvalidDraw)

	bad := model.DefaultRateTable()
	delete(bad.TierRates, model.Tier4)
	_, err = s.Check(connectReq, []int{31, 5, 30, 1, 32}, &bad)
	require.ErrorIs(t, err, model.ErrInvalidRates)
}

func TestRates(t *testing.T) {
	s := newTestService(t)
	assert.Equal(t, int64(10), s.Rates().BaseUnit)
}
