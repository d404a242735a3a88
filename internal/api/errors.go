// Package api holds what the HTTP handlers share.
package api

import (
	"errors"
	"lotto_backend/internal/model"
	"lotto_backend/pkg/resp"
	"net/http"

	"go.uber.org/zap"
)

// StatusFor maps a service error to an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidBet),
		errors.Is(err, model.ErrInvalidDraw),
		errors.Is(err, model.ErrInvalidRates),
		errors.Is(err, model.ErrInvalidCredentials),
		errors.Is(err, model.ErrInvalidFilter):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrDrawNotFound),
		errors.Is(err, model.ErrBetNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrEmptyPortfolio),
		errors.Is(err, model.ErrLoginTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes err as a JSON error body. Internal errors are logged and
// hidden from the client.
func WriteError(w http.ResponseWriter, log *zap.Logger, op string, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Error(op+" failed", zap.Error(err))
		resp.WriteError(w, status, http.StatusText(status))
		return
	}

	log.Debug(op+" rejected", zap.Int("status", status), zap.Error(err))
	resp.WriteError(w, status, err.Error())
}
