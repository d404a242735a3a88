package model

import "time"

// Wager is a priced bet held in a player's slip.
type Wager struct {
	ID  string
	Bet Bet
	// Cost is in whole currency units, rounded up once over all tiers.
	Cost int64
	// Touches is the pre-draw touch count per purchased tier.
	Touches   map[Tier]int64
	CreatedAt time.Time
	// RatesDiscount marks a bet that took the rate table's discount rather
	// than one the player chose.
	RatesDiscount bool
}

// TotalTouches sums Touches over every tier.
func (w Wager) TotalTouches() int64 {
	var total int64
	for _, n := range w.Touches {
		total += n
	}
	return total
}
