package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BetRequest is the unvalidated shape of a bet as entered by a player.
// TailDigit must be set for tail bets.
type BetRequest struct {
	Kind       BetKind
	Numbers    []int
	Columns    [][]int
	TailDigit  *int
	Tiers      []Tier
	UnitAmount int64
	// DiscountRate overrides the rate table's discount when set.
	DiscountRate *decimal.Decimal
}

// Build validates the request and returns the Bet it describes.
func (r BetRequest) Build(defaultDiscount decimal.Decimal) (Bet, error) {
	discount := defaultDiscount
	if r.DiscountRate != nil {
		discount = *r.DiscountRate
	}

	switch r.Kind {
	case BetConnect:
		return NewConnectBet(r.Numbers, r.Tiers, r.UnitAmount, discount)
	case BetColumn:
		return NewColumnBet(r.Columns, r.Tiers, r.UnitAmount, discount)
	case BetRide:
		return NewRideBet(r.Numbers, r.UnitAmount)
	case BetTail:
		if r.TailDigit == nil {
			return Bet{}, fmt.Errorf("%w: tail bet needs a digit", ErrInvalidBet)
		}
		return NewTailBet(*r.TailDigit, r.UnitAmount)
	default:
		return Bet{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidBet, r.Kind)
	}
}
