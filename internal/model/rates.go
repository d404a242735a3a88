package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RateTable holds every adjustable price. Prize and ride cost values are
// quoted per BaseUnit of stake.
type RateTable struct {
	// TierRates is the prize for one touch at each tier.
	TierRates map[Tier]decimal.Decimal
	// RidePrize is the prize for each matched number of a ride or tail bet.
	RidePrize decimal.Decimal
	// RideCost is the cost of each number of a ride or tail bet.
	RideCost decimal.Decimal
	// DiscountRate is the default discount for connect and column bets.
	DiscountRate decimal.Decimal
	BaseUnit     int64
}

// DefaultRateTable returns the rates the results board usually quotes.
func DefaultRateTable() RateTable {
	return RateTable{
		TierRates: map[Tier]decimal.Decimal{
			Tier2: decimal.NewFromInt(530),
			Tier3: decimal.NewFromInt(5700),
			Tier4: decimal.NewFromInt(800000),
		},
		RidePrize:    decimal.NewFromInt(2120),
		RideCost:     decimal.NewFromInt(304),
		DiscountRate: decimal.RequireFromString("0.78"),
		BaseUnit:     10,
	}
}

func (r RateTable) Validate() error {
	if r.BaseUnit <= 0 {
		return fmt.Errorf("%w: base unit must be positive", ErrInvalidRates)
	}
	for _, t := range Tiers {
		rate, ok := r.TierRates[t]
		if !ok {
			return fmt.Errorf("%w: missing rate for tier %d", ErrInvalidRates, t)
		}
		if rate.IsNegative() {
			return fmt.Errorf("%w: negative rate for tier %d", ErrInvalidRates, t)
		}
	}
	if r.RidePrize.IsNegative() || r.RideCost.IsNegative() {
		return fmt.Errorf("%w: ride rates must not be negative", ErrInvalidRates)
	}
	if !r.DiscountRate.IsPositive() || r.DiscountRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: discount rate %s must be in (0, 1]", ErrInvalidRates, r.DiscountRate)
	}
	return nil
}

// Rate returns the per-touch prize for t, zero for an unknown tier.
func (r RateTable) Rate(t Tier) decimal.Decimal {
	return r.TierRates[t]
}

// RideCostRate is the cost of one ride number per unit of stake.
func (r RateTable) RideCostRate() decimal.Decimal {
	return r.RideCost.Div(decimal.NewFromInt(r.BaseUnit))
}
