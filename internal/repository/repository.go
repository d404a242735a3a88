package repository

import (
	"context"
	"lotto_backend/internal/model"
	"time"
)

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}

// DrawRepository caches published draws by date.
type DrawRepository interface {
	GetDraw(ctx context.Context, date time.Time) (*model.DrawResult, error)
	SaveDraw(ctx context.Context, draw model.DrawResult) error
}

// HistoryRepository stores settled wagers.
type HistoryRepository interface {
	SaveRecords(ctx context.Context, records []model.HistoryRecord) error
	ListRecords(ctx context.Context, userID int, filter model.HistoryFilter) ([]model.HistoryRecord, error)
}

// SlipRepository holds each player's working list of wagers.
type SlipRepository interface {
	Add(ctx context.Context, userID int, wager model.Wager) error
	List(ctx context.Context, userID int) ([]model.Wager, error)
	Remove(ctx context.Context, userID int, wagerID string) error
	Clear(ctx context.Context, userID int) error
}
