package history

import (
	"context"
	"lotto_backend/internal/model"
	"lotto_backend/internal/repository"
	"lotto_backend/internal/service"
)

type serv struct {
	historyRepo repository.HistoryRepository
}

func NewHistoryService(historyRepo repository.HistoryRepository) service.HistoryService {
	return &serv{historyRepo: historyRepo}
}

// List returns the player's settled wagers, newest draw first, with totals
// over the returned records.
func (s *serv) List(ctx context.Context, userID int, filter model.HistoryFilter) (*model.HistorySummary, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.historyRepo.ListRecords(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	return &model.HistorySummary{
		Records: records,
		Totals:  model.SumRecordTotals(records),
	}, nil
}
