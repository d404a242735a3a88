package calc

import (
	"lotto_backend/internal/model"
	"lotto_backend/internal/service"
	"lotto_backend/internal/service/wager"
)

type serv struct {
	engine *wager.Engine
}

func NewCalcService(engine *wager.Engine) service.CalcService {
	return &serv{engine: engine}
}

func (s *serv) Rates() model.RateTable {
	return s.engine.Rates()
}

// Quote prices req without storing it.
func (s *serv) Quote(req model.BetRequest, rates *model.RateTable) (*model.Wager, error) {
	engine, err := s.engineFor(rates)
	if err != nil {
		return nil, err
	}

	bet, err := req.Build(engine.Rates().DiscountRate)
	if err != nil {
		return nil, err
	}

	w, err := engine.Place(bet)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Check prices req and settles it against draw.
func (s *serv) Check(req model.BetRequest, draw []int, rates *model.RateTable) (*model.SettlementResult, error) {
	engine, err := s.engineFor(rates)
	if err != nil {
		return nil, err
	}

	d, err := model.NewDraw(draw)
	if err != nil {
		return nil, err
	}

	bet, err := req.Build(engine.Rates().DiscountRate)
	if err != nil {
		return nil, err
	}
	w, err := engine.Place(bet)
	if err != nil {
		return nil, err
	}

	res, err := engine.Settle(w, d)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *serv) engineFor(rates *model.RateTable) (*wager.Engine, error) {
	if rates == nil {
		return s.engine, nil
	}
	return wager.NewEngine(*rates)
}
