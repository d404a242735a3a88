package wager

import (
	"lotto_backend/internal/model"
)

// Engine prices and settles wagers against one rate table. It holds no other
// state and is safe for concurrent use.
type Engine struct {
	rates model.RateTable
}

func NewEngine(rates model.RateTable) (*Engine, error) {
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	return &Engine{rates: rates}, nil
}

func (e *Engine) Rates() model.RateTable {
	return e.rates
}

// Touches returns the pre-draw touch count of every purchased tier. Ride and
// tail bets have no tiers and get an empty map.
func (e *Engine) Touches(bet model.Bet) (map[model.Tier]int64, error) {
	if err := bet.Validate(); err != nil {
		return nil, err
	}
	return tierTouches(bet, bet.GroupSizes()), nil
}

// Place prices bet and returns it as a Wager ready for a slip.
func (e *Engine) Place(bet model.Bet) (model.Wager, error) {
	touches, err := e.Touches(bet)
	if err != nil {
		return model.Wager{}, err
	}
	cost, err := e.Price(bet)
	if err != nil {
		return model.Wager{}, err
	}

	return model.Wager{
		Bet:     bet,
		Cost:    cost,
		Touches: touches,
	}, nil
}

// tierTouches counts touches per purchased tier for the given per-group
// counts. Called with group sizes before the draw and with matched counts
// after it.
func tierTouches(bet model.Bet, counts []int) map[model.Tier]int64 {
	touches := make(map[model.Tier]int64, len(bet.Tiers()))
	for _, t := range bet.Tiers() {
		switch bet.Kind() {
		case model.BetConnect:
			touches[t] = TouchCount(sum(counts), int(t))
		case model.BetColumn:
			touches[t] = ColumnTouchCount(counts, int(t))
		}
	}
	return touches
}

func sum(values []int) int {
	var total int
	for _, v := range values {
		total += v
	}
	return total
}
