package converter

import (
	dto "lotto_backend/internal/api/dto/wager"
	"lotto_backend/internal/model"
	"time"

	"github.com/shopspring/decimal"
)

// ParseDate reads a YYYY-MM-DD draw date in the draw time zone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, s, model.DrawZone)
}

func ToBetRequest(req dto.BetRequest) model.BetRequest {
	tiers := make([]model.Tier, len(req.Tiers))
	for i, t := range req.Tiers {
		tiers[i] = model.Tier(t)
	}

	return model.BetRequest{
		Kind:         model.BetKind(req.Kind),
		Numbers:      req.Numbers,
		Columns:      req.Columns,
		TailDigit:    req.TailDigit,
		Tiers:        tiers,
		UnitAmount:   req.UnitAmount,
		DiscountRate: req.DiscountRate,
	}
}

// ToRateTable returns nil when no override was sent.
func ToRateTable(rates *dto.Rates) *model.RateTable {
	if rates == nil {
		return nil
	}

	table := model.RateTable{
		TierRates:    make(map[model.Tier]decimal.Decimal, len(rates.TierRates)),
		RidePrize:    rates.RidePrize,
		RideCost:     rates.RideCost,
		DiscountRate: rates.DiscountRate,
		BaseUnit:     rates.BaseUnit,
	}
	for t, rate := range rates.TierRates {
		table.TierRates[model.Tier(t)] = rate
	}
	return &table
}

func ToRatesResponse(rates model.RateTable) dto.Rates {
	tierRates := make(map[int]decimal.Decimal, len(rates.TierRates))
	for t, rate := range rates.TierRates {
		tierRates[int(t)] = rate
	}

	return dto.Rates{
		BaseUnit:     rates.BaseUnit,
		DiscountRate: rates.DiscountRate,
		TierRates:    tierRates,
		RidePrize:    rates.RidePrize,
		RideCost:     rates.RideCost,
	}
}

func ToWagerResponse(w model.Wager) dto.WagerResponse {
	bet := w.Bet
	res := dto.WagerResponse{
		ID:           w.ID,
		Kind:         string(bet.Kind()),
		Numbers:      bet.Numbers(),
		UnitAmount:   bet.UnitAmount(),
		TotalTouches: w.TotalTouches(),
		Cost:         w.Cost,
	}

	switch bet.Kind() {
	case model.BetColumn:
		res.Columns = toColumns(bet.Groups())
	case model.BetTail:
		digit := bet.TailDigit()
		res.TailDigit = &digit
	}

	if bet.Kind().Tiered() {
		discount := bet.DiscountRate().String()
		res.DiscountRate = &discount
		res.Tiers = toInts(bet.Tiers())
		res.Touches = toTierCounts(w.Touches)
	}

	if !w.CreatedAt.IsZero() {
		createdAt := w.CreatedAt
		res.CreatedAt = &createdAt
	}

	return res
}

func ToSlipResponse(wagers []model.Wager) dto.SlipResponse {
	res := dto.SlipResponse{Bets: make([]dto.WagerResponse, len(wagers))}
	for i, w := range wagers {
		res.Bets[i] = ToWagerResponse(w)
		res.TotalCost += w.Cost
	}
	return res
}

func ToResultResponse(r model.SettlementResult) dto.ResultResponse {
	res := dto.ResultResponse{
		WagerID: r.WagerID,
		Kind:    string(r.Kind),
		Numbers: r.Numbers,
		Matched: r.Matched,
		Cost:    r.Cost,
		Prize:   r.Prize,
		Profit:  r.Profit(),
	}

	if r.Kind == model.BetColumn {
		res.Columns = toColumns(r.Groups)
	}

	if r.Kind.Tiered() {
		res.TouchesWon = toTierCounts(r.TouchesWon)
		res.TierPrizes = make(map[int]decimal.Decimal, len(r.TierPrizes))
		for t, p := range r.TierPrizes {
			res.TierPrizes[int(t)] = p
		}
	}

	return res
}

func ToTotalsResponse(t model.PortfolioTotals) dto.TotalsResponse {
	return dto.TotalsResponse{
		Cost:   t.Cost,
		Prize:  t.Prize,
		Profit: t.Profit,
	}
}

func ToSettlementResponse(report *model.SettlementReport) dto.SettlementResponse {
	results := make([]dto.ResultResponse, len(report.Results))
	for i, r := range report.Results {
		results[i] = ToResultResponse(r)
	}

	return dto.SettlementResponse{
		DrawDate: report.DrawDate.Format(time.DateOnly),
		Draw:     report.Draw,
		Results:  results,
		Totals:   ToTotalsResponse(report.Totals),
	}
}

func toColumns(groups []model.Group) [][]int {
	columns := make([][]int, len(groups))
	for i, g := range groups {
		columns[i] = g
	}
	return columns
}

func toInts(tiers []model.Tier) []int {
	out := make([]int, len(tiers))
	for i, t := range tiers {
		out[i] = int(t)
	}
	return out
}

func toTierCounts(counts map[model.Tier]int64) map[int]int64 {
	out := make(map[int]int64, len(counts))
	for t, n := range counts {
		out[int(t)] = n
	}
	return out
}
