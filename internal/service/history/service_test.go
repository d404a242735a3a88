package history

import (
	"context"
	"lotto_backend/internal/model"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHistory struct {
	records    []model.HistoryRecord
	lastFilter model.HistoryFilter
	calls      int
}

func (s *stubHistory) SaveRecords(context.Context, []model.HistoryRecord) error { return nil }

func (s *stubHistory) ListRecords(_ context.Context, _ int, filter model.HistoryFilter) ([]model.HistoryRecord, error) {
	s.calls++
	s.lastFilter = filter
	return s.records, nil
}

func TestListTotals(t *testing.T) {
	repo := &stubHistory{records: []model.HistoryRecord{
		{Kind: model.BetConnect, Cost: 47, Prize: decimal.NewFromInt(530)},
		{Kind: model.BetRide, Cost: 152, Prize: decimal.RequireFromString("10.5")},
		{Kind: model.BetColumn, Cost: 94, Prize: decimal.Zero},
	}}
	s := NewHistoryService(repo)

	from := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	summary, err := s.List(context.Background(), 1, model.HistoryFilter{From: from})
	require.NoError(t, err)
	assert.Len(t, summary.Records, 3)
	assert.Equal(t, int64(293), summary.Totals.Cost)
	assert.Equal(t, "540.5", summary.Totals.Prize.String())
	assert.Equal(t, "247.5", summary.Totals.Profit.String())
	assert.Equal(t, from, repo.lastFilter.From)
}

func TestListEmpty(t *testing.T) {
	s := NewHistoryService(&stubHistory{})
	summary, err := s.List(context.Background(), 1, model.HistoryFilter{})
	require.NoError(t, err)
	assert.Empty(t, summary.Records)
	assert.Zero(t, summary.Totals.Cost)
	assert.True(t, summary.Totals.Prize.IsZero())
}

func TestListRejectsInvertedRange(t *testing.T) {
	repo := &stubHistory{}
	s := NewHistoryService(repo)

	to := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	_, err := s.List(context.Background(), 1, model.HistoryFilter{From: to.AddDate(0, 0, 1), To: to})
	require.ErrorIs(t, err, model.ErrInvalidFilter)
	assert.Zero(t, repo.calls)
}
