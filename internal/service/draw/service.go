package draw

import (
	"context"
	"errors"
	"lotto_backend/internal/model"
	"lotto_backend/internal/repository"
	"lotto_backend/internal/service"
	"time"

	"go.uber.org/zap"
)

// Fetcher looks up a published draw at its source.
type Fetcher interface {
	FetchDraw(ctx context.Context, date time.Time) (model.Draw, error)
}

type serv struct {
	drawRepo repository.DrawRepository
	fetcher  Fetcher
	log      *zap.Logger
	now      func() time.Time
}

func NewDrawService(drawRepo repository.DrawRepository, fetcher Fetcher, log *zap.Logger) service.DrawService {
	return &serv{
		drawRepo: drawRepo,
		fetcher:  fetcher,
		log:      log,
		now:      time.Now,
	}
}

// GetDraw returns the stored draw for date, fetching and storing it on a miss.
func (s *serv) GetDraw(ctx context.Context, date time.Time) (*model.DrawResult, error) {
	day := model.DrawDay(date)

	res, err := s.drawRepo.GetDraw(ctx, day)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, model.ErrDrawNotFound) {
		return nil, err
	}

	if day.After(model.DrawDay(s.now())) {
		return nil, model.ErrDrawNotFound
	}

	numbers, err := s.fetcher.FetchDraw(ctx, day)
	if err != nil {
		return nil, err
	}
	draw, err := model.NewDraw(numbers)
	if err != nil {
		return nil, err
	}

	res = &model.DrawResult{Date: day, Numbers: draw, Source: model.DrawSourceScraped}
	if err := s.drawRepo.SaveDraw(ctx, *res); err != nil {
		return nil, err
	}

	s.log.Info("draw fetched",
		zap.String("date", day.Format(time.DateOnly)),
		zap.Ints("numbers", draw))

	return res, nil
}

// SetDraw stores numbers entered by hand, replacing any fetched draw.
func (s *serv) SetDraw(ctx context.Context, date time.Time, numbers []int) (*model.DrawResult, error) {
	draw, err := model.NewDraw(numbers)
	if err != nil {
		return nil, err
	}

	res := &model.DrawResult{Date: model.DrawDay(date), Numbers: draw, Source: model.DrawSourceManual}
	if err := s.drawRepo.SaveDraw(ctx, *res); err != nil {
		return nil, err
	}
	return res, nil
}

// Prefetch warms the cache with today's draw. Failures are only logged.
func (s *serv) Prefetch(ctx context.Context) {
	today := model.DrawDay(s.now())

	if _, err := s.GetDraw(ctx, today); err != nil {
		s.log.Warn("draw prefetch failed",
			zap.String("date", today.Format(time.DateOnly)),
			zap.Error(err))
	}
}
