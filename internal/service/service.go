package service

import (
	"context"
	"lotto_backend/internal/model"
	"time"
)

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

// SlipService manages a player's working list of wagers and settles it.
type SlipService interface {
	AddBet(ctx context.Context, userID int, req model.BetRequest) (*model.Wager, error)
	ListBets(ctx context.Context, userID int) ([]model.Wager, error)
	RemoveBet(ctx context.Context, userID int, wagerID string) error
	ClearBets(ctx context.Context, userID int) error
	// Settle checks the slip against the draw of date and records the
	// results. rates overrides the configured prize table when not nil.
	Settle(ctx context.Context, userID int, date time.Time, rates *model.RateTable) (*model.SettlementReport, error)
}

type DrawService interface {
	GetDraw(ctx context.Context, date time.Time) (*model.DrawResult, error)
	SetDraw(ctx context.Context, date time.Time, numbers []int) (*model.DrawResult, error)
	Prefetch(ctx context.Context)
}

type HistoryService interface {
	List(ctx context.Context, userID int, filter model.HistoryFilter) (*model.HistorySummary, error)
}

// CalcService prices and checks bets without storing anything.
type CalcService interface {
	Rates() model.RateTable
	Quote(req model.BetRequest, rates *model.RateTable) (*model.Wager, error)
	Check(req model.BetRequest, draw []int, rates *model.RateTable) (*model.SettlementResult, error)
}
