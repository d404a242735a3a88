// Package pilio fetches published 539 draws from the pilio.idv.tw results
// board.
package pilio

import (
	"context"
	"fmt"
	"io"
	"lotto_backend/internal/config"
	"lotto_backend/internal/model"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const listPath = "/lto539/list.asp"

type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewClient(cfg config.ScraperConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL(), "/"),
		userAgent:  cfg.UserAgent(),
		httpClient: &http.Client{Timeout: cfg.Timeout()},
	}
}

// FetchDraw downloads the month listing that contains date and returns that
// day's draw. A day without a draw yields model.ErrDrawNotFound.
func (c *Client) FetchDraw(ctx context.Context, date time.Time) (model.Draw, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(date.Year()))
	q.Set("month", strconv.Itoa(int(date.Month())))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+listPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch draw list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch draw list: unexpected status %d", resp.StatusCode)
	}

	return ParseDraw(resp.Body, date)
}

// ParseDraw finds the table row whose first cell mentions date as MM/DDyy and
// returns the first cell in that row holding exactly five comma separated
// numbers.
func ParseDraw(r io.Reader, date time.Time) (model.Draw, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse draw list: %w", err)
	}

	key := date.Format("01/0206")
	for _, row := range findAll(doc, "tr") {
		cells := findAll(row, "td")
		if len(cells) < 2 || !strings.Contains(text(cells[0]), key) {
			continue
		}
		for _, cell := range cells {
			if numbers, ok := parseNumbers(text(cell)); ok {
				return model.NewDraw(numbers)
			}
		}
	}

	return nil, fmt.Errorf("%w: %s", model.ErrDrawNotFound, date.Format(time.DateOnly))
}

func parseNumbers(s string) ([]int, bool) {
	if !strings.Contains(s, ",") {
		return nil, false
	}

	parts := strings.Split(s, ",")
	if len(parts) != model.DrawSize {
		return nil, false
	}

	numbers := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, false
		}
		numbers = append(numbers, n)
	}
	return numbers, true
}

func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
			// rows are not nested inside cells on this board
			if tag == "tr" || tag == "td" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// text returns the node's text content with whitespace trimmed.
func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
