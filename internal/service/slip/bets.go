package slip

import (
	"context"
	"lotto_backend/internal/model"

	"github.com/google/uuid"
)

// AddBet validates and prices req, then appends it to the player's slip.
func (s *serv) AddBet(ctx context.Context, userID int, req model.BetRequest) (*model.Wager, error) {
	bet, err := req.Build(s.engine.Rates().DiscountRate)
	if err != nil {
		return nil, err
	}

	w, err := s.engine.Place(bet)
	if err != nil {
		return nil, err
	}
	w.ID = uuid.NewString()
	w.CreatedAt = s.now()
	w.RatesDiscount = req.DiscountRate == nil && bet.Kind().Tiered()

	if err := s.slipRepo.Add(ctx, userID, w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *serv) ListBets(ctx context.Context, userID int) ([]model.Wager, error) {
	return s.slipRepo.List(ctx, userID)
}

func (s *serv) RemoveBet(ctx context.Context, userID int, wagerID string) error {
	return s.slipRepo.Remove(ctx, userID, wagerID)
}

func (s *serv) ClearBets(ctx context.Context, userID int) error {
	return s.slipRepo.Clear(ctx, userID)
}
