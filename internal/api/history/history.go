package history

import (
	"lotto_backend/internal/api"
	"lotto_backend/internal/converter"
	"lotto_backend/internal/middleware"
	"lotto_backend/internal/model"
	"lotto_backend/internal/service"
	"lotto_backend/pkg/resp"
	"net/http"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.HistoryService
	Log  *zap.Logger
}

type Handler struct {
	serv service.HistoryService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// List serves GET /history?from=YYYY-MM-DD&to=YYYY-MM-DD. Both bounds are
// optional.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var filter model.HistoryFilter
	q := r.URL.Query()
	if s := q.Get("from"); s != "" {
		from, err := converter.ParseDate(s)
		if err != nil {
			resp.WriteError(w, http.StatusBadRequest, "from must be YYYY-MM-DD")
			return
		}
		filter.From = from
	}
	if s := q.Get("to"); s != "" {
		to, err := converter.ParseDate(s)
		if err != nil {
			resp.WriteError(w, http.StatusBadRequest, "to must be YYYY-MM-DD")
			return
		}
		filter.To = to
	}

	summary, err := h.serv.List(r.Context(), userID, filter)
	if err != nil {
		api.WriteError(w, h.log, "list history", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(summary))
}
