package calc

import (
	"lotto_backend/internal/api"
	dto "lotto_backend/internal/api/dto/wager"
	"lotto_backend/internal/converter"
	"lotto_backend/internal/service"
	"lotto_backend/pkg/req"
	"lotto_backend/pkg/resp"
	"net/http"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.CalcService
	Log  *zap.Logger
}

type Handler struct {
	serv service.CalcService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

func (h *Handler) Rates(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRatesResponse(h.serv.Rates()))
}

func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.QuoteRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	wager, err := h.serv.Quote(converter.ToBetRequest(payload.Bet), converter.ToRateTable(payload.Rates))
	if err != nil {
		api.WriteError(w, h.log, "quote", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWagerResponse(*wager))
}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CheckRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.Check(converter.ToBetRequest(payload.Bet), payload.Draw, converter.ToRateTable(payload.Rates))
	if err != nil {
		api.WriteError(w, h.log, "check", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToResultResponse(*result))
}
