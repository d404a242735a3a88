package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// HistoryRecord is the stored form of one settlement result.
type HistoryRecord struct {
	ID        string
	UserID    int
	DrawDate  time.Time
	Kind      BetKind
	Numbers   []int
	Matched   []int
	Cost      int64
	Prize     decimal.Decimal
	CreatedAt time.Time
}

// HistoryFilter bounds a history query by draw date, both ends inclusive.
// Zero values leave that end open.
type HistoryFilter struct {
	From time.Time
	To   time.Time
}

func (f HistoryFilter) Validate() error {
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return fmt.Errorf("%w: from %s is after to %s", ErrInvalidFilter,
			f.From.Format(time.DateOnly), f.To.Format(time.DateOnly))
	}
	return nil
}

type HistorySummary struct {
	Records []HistoryRecord
	Totals  PortfolioTotals
}

// SettlementReport is what a player sees after settling their slip.
type SettlementReport struct {
	DrawDate time.Time
	PortfolioSettlement
}

// SumRecordTotals folds stored records into totals.
func SumRecordTotals(records []HistoryRecord) PortfolioTotals {
	totals := PortfolioTotals{Prize: decimal.Zero}
	for _, r := range records {
		totals.Cost += r.Cost
		totals.Prize = totals.Prize.Add(r.Prize)
	}
	totals.Profit = totals.Prize.Sub(decimal.NewFromInt(totals.Cost))
	return totals
}
