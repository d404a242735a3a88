package wager

import (
	"lotto_backend/internal/model"
	"slices"

	"github.com/shopspring/decimal"
)

// Settle checks one wager against draw. Only the draw is validated here; the
// wager's bet was validated when it was built and its cost is carried through
// unchanged.
func (e *Engine) Settle(w model.Wager, draw model.Draw) (model.SettlementResult, error) {
	if err := draw.Validate(); err != nil {
		return model.SettlementResult{}, err
	}
	return e.settle(w, draw), nil
}

func (e *Engine) settle(w model.Wager, draw model.Draw) model.SettlementResult {
	bet := w.Bet
	groups := bet.Groups()

	matchedSizes := make([]int, len(groups))
	matched := make([]int, 0, model.DrawSize)
	for i, g := range groups {
		for _, n := range g {
			if draw.Contains(n) {
				matchedSizes[i]++
				matched = append(matched, n)
			}
		}
	}
	// Groups are sorted and disjoint but a column's numbers interleave with
	// other columns, so sort the union.
	slices.Sort(matched)

	res := model.SettlementResult{
		WagerID:    w.ID,
		Kind:       bet.Kind(),
		Numbers:    bet.Numbers(),
		Groups:     groups,
		Matched:    matched,
		TouchesWon: map[model.Tier]int64{},
		TierPrizes: map[model.Tier]decimal.Decimal{},
		Prize:      decimal.Zero,
		Cost:       w.Cost,
	}

	stake := decimal.NewFromInt(bet.UnitAmount())
	base := decimal.NewFromInt(e.rates.BaseUnit)

	if !bet.Kind().Tiered() {
		res.Prize = decimal.NewFromInt(int64(len(matched))).
			Mul(e.rates.RidePrize).
			Mul(stake).
			Div(base)
		return res
	}

	for t, won := range tierTouches(bet, matchedSizes) {
		prize := decimal.NewFromInt(won).Mul(e.rates.Rate(t)).Mul(stake).Div(base)
		res.TouchesWon[t] = won
		res.TierPrizes[t] = prize
		res.Prize = res.Prize.Add(prize)
	}
	return res
}
