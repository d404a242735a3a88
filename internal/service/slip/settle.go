package slip

import (
	"context"
	"lotto_backend/internal/model"
	"lotto_backend/internal/service/wager"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Settle checks the whole slip against the draw of date and appends one
// history record per wager. The slip itself is left as it was.
func (s *serv) Settle(ctx context.Context, userID int, date time.Time, rates *model.RateTable) (*model.SettlementReport, error) {
	engine := s.engine
	if rates != nil {
		var err error
		if engine, err = wager.NewEngine(*rates); err != nil {
			return nil, err
		}
	}

	wagers, err := s.slipRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(wagers) == 0 {
		return nil, model.ErrEmptyPortfolio
	}

	// Stored costs were quoted with the configured table. Bets that took its
	// discount move to the override's.
	if rates != nil {
		if wagers, err = reprice(engine, wagers); err != nil {
			return nil, err
		}
	}

	draw, err := s.draws.GetDraw(ctx, date)
	if err != nil {
		return nil, err
	}

	settlement, err := engine.SettleAll(wagers, draw.Numbers)
	if err != nil {
		return nil, err
	}

	records := toHistoryRecords(userID, draw.Date, settlement.Results, s.now())
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.historyRepo.SaveRecords(ctx, records)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("slip settled",
		zap.Int("user_id", userID),
		zap.String("draw_date", draw.Date.Format(time.DateOnly)),
		zap.Int("wagers", len(wagers)),
		zap.Int64("cost", settlement.Totals.Cost),
		zap.String("prize", settlement.Totals.Prize.String()))

	return &model.SettlementReport{
		DrawDate:            draw.Date,
		PortfolioSettlement: settlement,
	}, nil
}

func reprice(engine *wager.Engine, wagers []model.Wager) ([]model.Wager, error) {
	out := make([]model.Wager, len(wagers))
	for i, w := range wagers {
		if w.RatesDiscount {
			bet, err := w.Bet.WithDiscount(engine.Rates().DiscountRate)
			if err != nil {
				return nil, err
			}
			w.Bet = bet
		}

		cost, err := engine.Price(w.Bet)
		if err != nil {
			return nil, err
		}
		w.Cost = cost
		out[i] = w
	}
	return out, nil
}

func toHistoryRecords(userID int, drawDate time.Time, results []model.SettlementResult, at time.Time) []model.HistoryRecord {
	records := make([]model.HistoryRecord, len(results))
	for i, r := range results {
		records[i] = model.HistoryRecord{
			ID:        uuid.NewString(),
			UserID:    userID,
			DrawDate:  drawDate,
			Kind:      r.Kind,
			Numbers:   r.Numbers,
			Matched:   r.Matched,
			Cost:      r.Cost,
			Prize:     r.Prize,
			CreatedAt: at,
		}
	}
	return records
}
