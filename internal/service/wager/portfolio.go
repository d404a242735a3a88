package wager

import (
	"lotto_backend/internal/model"

	"golang.org/x/sync/errgroup"
)

const (
	// parallelThreshold is the slip size from which wagers are settled on
	// several goroutines.
	parallelThreshold = 64
	maxWorkers        = 8
)

// SettleAll settles every wager against draw and totals cost, prize and
// profit. Results keep the order of wagers.
func (e *Engine) SettleAll(wagers []model.Wager, draw model.Draw) (model.PortfolioSettlement, error) {
	if err := draw.Validate(); err != nil {
		return model.PortfolioSettlement{}, err
	}
	if len(wagers) == 0 {
		return model.PortfolioSettlement{}, model.ErrEmptyPortfolio
	}

	results := make([]model.SettlementResult, len(wagers))
	if len(wagers) < parallelThreshold {
		for i, w := range wagers {
			results[i] = e.settle(w, draw)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(maxWorkers)
		for i, w := range wagers {
			g.Go(func() error {
				results[i] = e.settle(w, draw)
				return nil
			})
		}
		_ = g.Wait()
	}

	return model.PortfolioSettlement{
		Draw:    draw,
		Results: results,
		Totals:  model.SumTotals(results),
	}, nil
}
