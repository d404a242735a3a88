package slip

import (
	"lotto_backend/internal/repository"
	"lotto_backend/internal/service"
	"lotto_backend/internal/service/wager"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"
)

type serv struct {
	txManager   trm.Manager
	slipRepo    repository.SlipRepository
	historyRepo repository.HistoryRepository
	draws       service.DrawService
	engine      *wager.Engine
	log         *zap.Logger
	now         func() time.Time
}

func NewSlipService(
	txManager trm.Manager,
	slipRepo repository.SlipRepository,
	historyRepo repository.HistoryRepository,
	draws service.DrawService,
	engine *wager.Engine,
	log *zap.Logger,
) service.SlipService {
	return &serv{
		txManager:   txManager,
		slipRepo:    slipRepo,
		historyRepo: historyRepo,
		draws:       draws,
		engine:      engine,
		log:         log,
		now:         time.Now,
	}
}
