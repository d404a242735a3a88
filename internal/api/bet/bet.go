package bet

import (
	"lotto_backend/internal/api"
	dto "lotto_backend/internal/api/dto/wager"
	"lotto_backend/internal/converter"
	"lotto_backend/internal/middleware"
	"lotto_backend/internal/service"
	"lotto_backend/pkg/req"
	"lotto_backend/pkg/resp"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.SlipService
	Log  *zap.Logger
}

// Handler serves the player's slip. Every route expects middleware.Auth in
// front of it.
type Handler struct {
	serv service.SlipService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	wagers, err := h.serv.ListBets(r.Context(), userID)
	if err != nil {
		api.WriteError(w, h.log, "list bets", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSlipResponse(wagers))
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	payload, err := req.Decode[dto.BetRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	wager, err := h.serv.AddBet(r.Context(), userID, converter.ToBetRequest(payload))
	if err != nil {
		api.WriteError(w, h.log, "add bet", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToWagerResponse(*wager))
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.serv.RemoveBet(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		api.WriteError(w, h.log, "remove bet", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.serv.ClearBets(r.Context(), userID); err != nil {
		api.WriteError(w, h.log, "clear bets", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Settle checks the slip against the draw of the requested date.
func (h *Handler) Settle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	payload, err := req.Decode[dto.SettleRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	date, err := converter.ParseDate(payload.Date)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	report, err := h.serv.Settle(r.Context(), userID, date, converter.ToRateTable(payload.Rates))
	if err != nil {
		api.WriteError(w, h.log, "settle", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSettlementResponse(report))
}
