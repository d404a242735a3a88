package wager

import (
	"fmt"
	"lotto_backend/internal/model"
	"math"

	"github.com/shopspring/decimal"
)

// Price returns the cost of bet in whole currency units.
//
// Connect and column bets cost ceil(Σ touches(k) × unit × discount) over the
// purchased tiers. Ride and tail bets cost
// ceil(numbers × unit × RideCost / BaseUnit). The ceiling is taken once, on
// the total.
func (e *Engine) Price(bet model.Bet) (int64, error) {
	if err := bet.Validate(); err != nil {
		return 0, err
	}

	unit := decimal.NewFromInt(bet.UnitAmount())

	if !bet.Kind().Tiered() {
		n := decimal.NewFromInt(int64(len(bet.Numbers())))
		cost := n.Mul(unit).Mul(e.rates.RideCost).Div(decimal.NewFromInt(e.rates.BaseUnit))
		return toCost(cost)
	}

	var touches int64
	for _, n := range tierTouches(bet, bet.GroupSizes()) {
		touches += n
	}

	cost := decimal.NewFromInt(touches).Mul(unit).Mul(bet.DiscountRate())
	return toCost(cost)
}

var maxCost = decimal.NewFromInt(math.MaxInt64)

// toCost rounds cost up to whole units, rejecting totals that do not fit an
// int64.
func toCost(cost decimal.Decimal) (int64, error) {
	c := cost.Ceil()
	if c.GreaterThan(maxCost) {
		return 0, fmt.Errorf("%w: cost %s overflows", model.ErrInvalidBet, c)
	}
	return c.IntPart(), nil
}
