package draw

import (
	"lotto_backend/internal/api"
	dto "lotto_backend/internal/api/dto/draw"
	"lotto_backend/internal/converter"
	"lotto_backend/internal/service"
	"lotto_backend/pkg/req"
	"lotto_backend/pkg/resp"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.DrawService
	Log  *zap.Logger
}

type Handler struct {
	serv service.DrawService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	date, err := converter.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	result, err := h.serv.GetDraw(r.Context(), date)
	if err != nil {
		api.WriteError(w, h.log, "get draw", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDrawResponse(result))
}

// Set records a draw entered by hand.
func (h *Handler) Set(w http.ResponseWriter, r *http.Request) {
	date, err := converter.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	payload, err := req.Decode[dto.SetDrawRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.SetDraw(r.Context(), date, payload.Numbers)
	if err != nil {
		api.WriteError(w, h.log, "set draw", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDrawResponse(result))
}
