package api

import (
	"errors"
	"fmt"
	"lotto_backend/internal/model"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: bad", model.ErrInvalidBet), http.StatusBadRequest},
		{model.ErrInvalidDraw, http.StatusBadRequest},
		{model.ErrInvalidRates, http.StatusBadRequest},
		{model.ErrInvalidFilter, http.StatusBadRequest},
		{model.ErrUnauthorized, http.StatusUnauthorized},
		{model.ErrDrawNotFound, http.StatusNotFound},
		{model.ErrBetNotFound, http.StatusNotFound},
		{model.ErrEmptyPortfolio, http.StatusConflict},
		{model.ErrLoginTaken, http.StatusConflict},
		{errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}

func TestWriteErrorHidesInternalErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, zap.NewNop(), "settle", errors.New("connection refused"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")

	rec = httptest.NewRecorder()
	WriteError(rec, zap.NewNop(), "settle", model.ErrEmptyPortfolio)
	assert.JSONEq(t, `{"error":"empty portfolio"}`, rec.Body.String())
}
