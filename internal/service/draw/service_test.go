package draw

import (
	"context"
	"errors"
	"lotto_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type memDraws struct {
	saved map[string]model.DrawResult
}

func (m *memDraws) GetDraw(_ context.Context, date time.Time) (*model.DrawResult, error) {
	res, ok := m.saved[date.Format(time.DateOnly)]
	if !ok {
		return nil, model.ErrDrawNotFound
	}
	return &res, nil
}

func (m *memDraws) SaveDraw(_ context.Context, draw model.DrawResult) error {
	m.saved[draw.Date.Format(time.DateOnly)] = draw
	return nil
}

type stubFetcher struct {
	numbers model.Draw
	err     error
	calls   int
}

func (f *stubFetcher) FetchDraw(context.Context, time.Time) (model.Draw, error) {
	f.calls++
	return f.numbers, f.err
}

var today = time.Date(2026, time.October, 16, 21, 0, 0, 0, model.DrawZone)

func newTestService(f *stubFetcher) (*serv, *memDraws, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	repo := &memDraws{saved: map[string]model.DrawResult{}}
	s := NewDrawService(repo, f, zap.New(core)).(*serv)
	s.now = func() time.Time { return today }
	return s, repo, logs
}

func TestGetDrawFetchesOnceThenCaches(t *testing.T) {
	f := &stubFetcher{numbers: model.Draw{32, 5, 1, 30, 31}}
	s, repo, _ := newTestService(f)
	ctx := context.Background()

	res, err := s.GetDraw(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, model.Draw{1, 5, 30, 31, 32}, res.Numbers)
	assert.Equal(t, model.DrawSourceScraped, res.Source)
	assert.Contains(t, repo.saved, "2026-10-16")

	_, err = s.GetDraw(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 1, f.calls)
}

func TestGetDrawFutureDateSkipsFetch(t *testing.T) {
	f := &stubFetcher{numbers: model.Draw{1, 2, 3, 4, 5}}
	s, _, _ := newTestService(f)

	_, err := s.GetDraw(context.Background(), today.AddDate(0, 0, 1))
	require.ErrorIs(t, err, model.ErrDrawNotFound)
	assert.Zero(t, f.calls)
}

func TestGetDrawRejectsBadSource(t *testing.T) {
	f := &stubFetcher{numbers: model.Draw{1, 2, 3, 4}}
	s, repo, _ := newTestService(f)

	_, err := s.GetDraw(context.Background(), today)
	require.ErrorIs(t, err, model.ErrInvalidDraw)
	assert.Empty(t, repo.saved)
}

func TestSetDrawOverridesFetched(t *testing.T) {
	f := &stubFetcher{numbers: model.Draw{1, 2, 3, 4, 5}}
	s, _, _ := newTestService(f)
	ctx := context.Background()

	_, err := s.GetDraw(ctx, today)
	require.NoError(t, err)

	res, err := s.SetDraw(ctx, today, []int{39, 10, 20, 30, 11})
	require.NoError(t, err)
	assert.Equal(t, model.DrawSourceManual, res.Source)

	got, err := s.GetDraw(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, model.Draw{10, 11, 20, 30, 39}, got.Numbers)

	_, err = s.SetDraw(ctx, today, []int{1, 1, 2, 3, 4})
	require.ErrorIs(t, err, model.ErrInvalidDraw)
}

func TestPrefetchLogsFailure(t *testing.T) {
	f := &stubFetcher{err: errors.New("site down")}
	s, _, logs := newTestService(f)

	s.Prefetch(context.Background())

	entries := logs.FilterMessage("draw prefetch failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "2026-10-16", entries[0].ContextMap()["date"])
}
