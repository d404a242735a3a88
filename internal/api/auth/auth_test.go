package auth

import (
	"context"
	"encoding/json"
	"lotto_backend/internal/model"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAuth struct {
	loggedOut string
}

func (s *stubAuth) Register(_ context.Context, user *model.User) (*model.AuthData, error) {
	if user.Login == "taken" {
		return nil, model.ErrLoginTaken
	}
	return &model.AuthData{AccessToken: "access", RefreshToken: "refresh", SessionID: "sid"}, nil
}

func (s *stubAuth) Login(_ context.Context, login, password string) (*model.AuthData, error) {
	if password != "pw" {
		return nil, model.ErrUnauthorized
	}
	return &model.AuthData{AccessToken: "access", RefreshToken: "refresh", SessionID: "sid"}, nil
}

func (s *stubAuth) Refresh(_ context.Context, sessionID, refreshToken string) (string, error) {
	if sessionID != "sid" || refreshToken != "refresh" {
		return "", model.ErrUnauthorized
	}
	return "access2", nil
}

func (s *stubAuth) Logout(_ context.Context, sessionID string) error {
	s.loggedOut = sessionID
	return nil
}

func newTestHandler() (*Handler, *stubAuth) {
	s := &stubAuth{}
	return NewHandler(HandlerDeps{Serv: s, Log: zap.NewNop(), SessionTTL: time.Hour}), s
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestRegister(t *testing.T) {
	h, _ := newTestHandler()

	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"login":"ann","password":"pw"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "access", body["access_token"])

	cookies := rec.Result().Cookies()
	require.NotNil(t, cookieByName(cookies, sessionCookie))
	refresh := cookieByName(cookies, refreshCookie)
	require.NotNil(t, refresh)
	assert.Equal(t, refreshPath, refresh.Path)
	assert.Equal(t, 3600, refresh.MaxAge)

	rec = httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"login":"taken","password":"pw"}`)))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"login":"ann","extra":1}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	h, _ := newTestHandler()

	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"login":"ann","password":"bad"}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"login":"ann","password":"pw"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"access"`)
}

func TestRefreshAndLogout(t *testing.T) {
	h, s := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	rec := httptest.NewRecorder()
	h.Refresh(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "sid"})
	req.AddCookie(&http.Cookie{Name: refreshCookie, Value: "refresh"})
	rec = httptest.NewRecorder()
	h.Refresh(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access2")

	req = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "sid"})
	rec = httptest.NewRecorder()
	h.Logout(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "sid", s.loggedOut)
	assert.Equal(t, -1, cookieByName(rec.Result().Cookies(), sessionCookie).MaxAge)
}
