package draw

import (
	"context"
	"lotto_backend/internal/model"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubDraws struct {
	stored map[string]model.DrawResult
}

func (s *stubDraws) GetDraw(_ context.Context, date time.Time) (*model.DrawResult, error) {
	d, ok := s.stored[date.Format(time.DateOnly)]
	if !ok {
		return nil, model.ErrDrawNotFound
	}
	return &d, nil
}

func (s *stubDraws) SetDraw(_ context.Context, date time.Time, numbers []int) (*model.DrawResult, error) {
	d, err := model.NewDraw(numbers)
	if err != nil {
		return nil, err
	}
	res := model.DrawResult{Date: date, Numbers: d, Source: model.DrawSourceManual}
	s.stored[date.Format(time.DateOnly)] = res
	return &res, nil
}

func (s *stubDraws) Prefetch(context.Context) {}

func newRouter() http.Handler {
	h := NewHandler(HandlerDeps{Serv: &stubDraws{stored: map[string]model.DrawResult{}}, Log: zap.NewNop()})
	r := chi.NewRouter()
	r.Get("/draws/{date}", h.Get)
	r.Put("/draws/{date}", h.Set)
	return r
}

func TestSetThenGet(t *testing.T) {
	r := newRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/draws/2026-10-16", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/draws/2026-10-16", strings.NewReader(`{"numbers":[32,5,1,30,31]}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/draws/2026-10-16", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2026-10-16","numbers":[1,5,30,31,32],"source":"manual"}`, rec.Body.String())
}

func TestBadInput(t *testing.T) {
	r := newRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/draws/yesterday", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/draws/2026-10-16", strings.NewReader(`{"numbers":[1,2,3,4,40]}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
