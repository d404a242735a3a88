package auth

import (
	"lotto_backend/internal/api"
	dto "lotto_backend/internal/api/dto/auth"
	"lotto_backend/internal/converter"
	"lotto_backend/internal/model"
	"lotto_backend/internal/service"
	"lotto_backend/pkg/req"
	"lotto_backend/pkg/resp"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	sessionCookie = "session_id"
	refreshCookie = "refresh_token"
	refreshPath   = "/auth/refresh"
)

type HandlerDeps struct {
	Serv       service.AuthService
	Log        *zap.Logger
	SessionTTL time.Duration
}

type Handler struct {
	serv       service.AuthService
	log        *zap.Logger
	sessionTTL time.Duration
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:       deps.Serv,
		log:        deps.Log,
		sessionTTL: deps.SessionTTL,
	}
}

// Register creates the user, opens a session and returns the access token.
// The session id and refresh token go out as cookies.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	data, err := h.serv.Register(r.Context(), converter.RegisterRequestToUserModel(&requestBody))
	if err != nil {
		api.WriteError(w, h.log, "register", err)
		return
	}

	h.writeSession(w, http.StatusCreated, data)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Login, requestBody.Password)
	if err != nil {
		api.WriteError(w, h.log, "login", err)
		return
	}

	h.writeSession(w, http.StatusOK, data)
}

// Refresh issues a new access token for the session in the cookies.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	sessionID, err := r.Cookie(sessionCookie)
	if err != nil {
		resp.WriteError(w, http.StatusUnauthorized, "no session_id cookie")
		return
	}
	refreshToken, err := r.Cookie(refreshCookie)
	if err != nil {
		resp.WriteError(w, http.StatusUnauthorized, "no refresh_token cookie")
		return
	}

	accessToken, err := h.serv.Refresh(r.Context(), sessionID.Value, refreshToken.Value)
	if err != nil {
		api.WriteError(w, h.log, "refresh", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: accessToken})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		resp.WriteError(w, http.StatusUnauthorized, "no session_id cookie")
		return
	}

	if err := h.serv.Logout(r.Context(), c.Value); err != nil {
		api.WriteError(w, h.log, "logout", err)
		return
	}

	deleteCookie(w, sessionCookie, "/")
	deleteCookie(w, refreshCookie, refreshPath)

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeSession(w http.ResponseWriter, status int, data *model.AuthData) {
	maxAge := int(h.sessionTTL.Seconds())
	setCookie(w, sessionCookie, data.SessionID, "/", maxAge)
	setCookie(w, refreshCookie, data.RefreshToken, refreshPath, maxAge)

	resp.WriteJSONResponse(w, status, dto.TokenResponse{AccessToken: data.AccessToken})
}

func setCookie(w http.ResponseWriter, name, value, path string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

func deleteCookie(w http.ResponseWriter, name, path string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
