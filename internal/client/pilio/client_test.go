package pilio

import (
	"context"
	"lotto_backend/internal/model"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listPage = `<html><body>
<table>
<tr><td>日期</td><td>號碼</td></tr>
<tr><td>10/1526<br>(三)</td><td>03, 11, 17, 24, 38</td></tr>
<tr><td>10/1626<br>(四)</td><td><b>32, 05, 01, 30, 31</b></td><td>備註</td></tr>
<tr><td>10/1726</td><td>1,2,3</td></tr>
</table>
</body></html>`

type scraperCfg struct{ url string }

func (c scraperCfg) BaseURL() string { return c.url }

func (c scraperCfg) Timeout() time.Duration { return time.Second }

func (c scraperCfg) UserAgent() string { return "test-agent" }

func TestParseDraw(t *testing.T) {
	date := time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC)
	draw, err := ParseDraw(strings.NewReader(listPage), date)
	require.NoError(t, err)
	assert.Equal(t, model.Draw{1, 5, 30, 31, 32}, draw)
}

func TestParseDrawMissingDay(t *testing.T) {
	date := time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)
	_, err := ParseDraw(strings.NewReader(listPage), date)
	require.ErrorIs(t, err, model.ErrDrawNotFound)

	// a row exists but carries no five-number cell
	date = time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)
	_, err = ParseDraw(strings.NewReader(listPage), date)
	require.ErrorIs(t, err, model.ErrDrawNotFound)
}

func TestParseDrawRejectsBadNumbers(t *testing.T) {
	page := `<table><tr><td>10/1626</td><td>1, 2, 3, 4, 44</td></tr></table>`
	date := time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC)
	_, err := ParseDraw(strings.NewReader(page), date)
	require.ErrorIs(t, err, model.ErrInvalidDraw)
}

func TestFetchDraw(t *testing.T) {
	var gotQuery, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, listPath, r.URL.Path)
		gotQuery = r.URL.RawQuery
		gotAgent = r.UserAgent()
		_, _ = w.Write([]byte(listPage))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(scraperCfg{url: srv.URL + "/"})
	draw, err := c.FetchDraw(context.Background(), time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, model.Draw{3, 11, 17, 24, 38}, draw)
	assert.Equal(t, "month=10&year=2026", gotQuery)
	assert.Equal(t, "test-agent", gotAgent)
}

func TestFetchDrawBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(scraperCfg{url: srv.URL})
	_, err := c.FetchDraw(context.Background(), time.Now())
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrDrawNotFound)
}
