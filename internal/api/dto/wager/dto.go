package wager

import (
	"time"

	"github.com/shopspring/decimal"
)

// BetRequest is a bet as a player enters it. Numbers is used by connect and
// ride bets, Columns by column bets and TailDigit by tail bets.
type BetRequest struct {
	Kind         string           `json:"kind"`
	Numbers      []int            `json:"numbers,omitempty"`
	Columns      [][]int          `json:"columns,omitempty"`
	TailDigit    *int             `json:"tail_digit,omitempty"`
	Tiers        []int            `json:"tiers,omitempty"`
	UnitAmount   int64            `json:"unit_amount"`
	DiscountRate *decimal.Decimal `json:"discount_rate,omitempty"`
}

// Rates is the adjustable prize table. Prize and ride cost values are per
// base_unit of stake.
type Rates struct {
	BaseUnit     int64                   `json:"base_unit"`
	DiscountRate decimal.Decimal         `json:"discount_rate"`
	TierRates    map[int]decimal.Decimal `json:"tier_rates"`
	RidePrize    decimal.Decimal         `json:"ride_prize"`
	RideCost     decimal.Decimal         `json:"ride_cost"`
}

type WagerResponse struct {
	ID           string        `json:"id,omitempty"`
	Kind         string        `json:"kind"`
	Numbers      []int         `json:"numbers"`
	Columns      [][]int       `json:"columns,omitempty"`
	TailDigit    *int          `json:"tail_digit,omitempty"`
	Tiers        []int         `json:"tiers,omitempty"`
	UnitAmount   int64         `json:"unit_amount"`
	DiscountRate *string       `json:"discount_rate,omitempty"`
	Touches      map[int]int64 `json:"touches,omitempty"`
	TotalTouches int64         `json:"total_touches"`
	Cost         int64         `json:"cost"`
	CreatedAt    *time.Time    `json:"created_at,omitempty"`
}

type SlipResponse struct {
	Bets      []WagerResponse `json:"bets"`
	TotalCost int64           `json:"total_cost"`
}

type QuoteRequest struct {
	Bet   BetRequest `json:"bet"`
	Rates *Rates     `json:"rates,omitempty"`
}

type CheckRequest struct {
	Bet   BetRequest `json:"bet"`
	Draw  []int      `json:"draw"`
	Rates *Rates     `json:"rates,omitempty"`
}

type SettleRequest struct {
	Date  string `json:"date"`
	Rates *Rates `json:"rates,omitempty"`
}

type ResultResponse struct {
	WagerID    string                  `json:"wager_id,omitempty"`
	Kind       string                  `json:"kind"`
	Numbers    []int                   `json:"numbers"`
	Columns    [][]int                 `json:"columns,omitempty"`
	Matched    []int                   `json:"matched"`
	TouchesWon map[int]int64           `json:"touches_won,omitempty"`
	TierPrizes map[int]decimal.Decimal `json:"tier_prizes,omitempty"`
	Cost       int64                   `json:"cost"`
	Prize      decimal.Decimal         `json:"prize"`
	Profit     decimal.Decimal         `json:"profit"`
}

type TotalsResponse struct {
	Cost   int64           `json:"cost"`
	Prize  decimal.Decimal `json:"prize"`
	Profit decimal.Decimal `json:"profit"`
}

type SettlementResponse struct {
	DrawDate string           `json:"draw_date"`
	Draw     []int            `json:"draw"`
	Results  []ResultResponse `json:"results"`
	Totals   TotalsResponse   `json:"totals"`
}
