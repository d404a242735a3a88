package model

import "github.com/shopspring/decimal"

// SettlementResult is one wager checked against a draw.
type SettlementResult struct {
	WagerID string
	Kind    BetKind
	Numbers []int
	Groups  []Group
	// Matched is in ascending order and may be empty.
	Matched []int
	// TouchesWon and TierPrizes have one entry per purchased tier; they are
	// empty for ride and tail bets.
	TouchesWon map[Tier]int64
	TierPrizes map[Tier]decimal.Decimal
	Prize      decimal.Decimal
	Cost       int64
}

// Profit is Prize minus Cost.
func (r SettlementResult) Profit() decimal.Decimal {
	return r.Prize.Sub(decimal.NewFromInt(r.Cost))
}

type PortfolioTotals struct {
	Cost   int64
	Prize  decimal.Decimal
	Profit decimal.Decimal
}

// PortfolioSettlement is a whole slip checked against one draw. Results keep
// the slip order.
type PortfolioSettlement struct {
	Draw    Draw
	Results []SettlementResult
	Totals  PortfolioTotals
}

// SumTotals folds results into totals.
func SumTotals(results []SettlementResult) PortfolioTotals {
	totals := PortfolioTotals{Prize: decimal.Zero}
	for _, r := range results {
		totals.Cost += r.Cost
		totals.Prize = totals.Prize.Add(r.Prize)
	}
	totals.Profit = totals.Prize.Sub(decimal.NewFromInt(totals.Cost))
	return totals
}
