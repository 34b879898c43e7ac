// Package api is the HTTP client for the history site's public API.
// The site owns all quiz content and correctness data; this client only
// consumes it.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/user/hip/internal/quiz"
)

// QuizParams scope a quiz request. An empty DayKey asks for questions
// drawn from the whole dataset; Count is clamped server-side to 1..20.
type QuizParams struct {
	DayKey string // "MM-DD"
	Count  int
}

// QuizFetcher is the outbound port for quiz retrieval. The TUI and the
// CLI depend on this rather than on the concrete HTTP client so the
// fetch boundary can be faked in tests.
type QuizFetcher interface {
	FetchQuiz(ctx context.Context, params QuizParams) (*quiz.Response, error)
}

// Event is one history event from the events endpoint.
type Event struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Year        int      `json:"year"`
	Category    string   `json:"category"`
	Region      string   `json:"region"`
	Tags        []string `json:"tags"`
}

// EventParams filter an events listing. Zero values mean "no filter".
type EventParams struct {
	DayKey    string
	Query     string
	Category  string
	StartYear int
	EndYear   int
	Limit     int
}

// Client talks to the site API over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

// NewClient returns a client for the API at baseURL. A zero timeout
// means no client-side timeout; callers can still cancel via context.
func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// FetchQuiz requests one round of questions. Any transport failure or
// non-2xx status is returned as a single error; there is no retry and
// no distinction by status code.
func (c *Client) FetchQuiz(ctx context.Context, params QuizParams) (*quiz.Response, error) {
	q := url.Values{}
	if params.DayKey != "" {
		q.Set("mmdd", params.DayKey)
	}
	if params.Count > 0 {
		q.Set("count", strconv.Itoa(params.Count))
	}

	var resp quiz.Response
	if err := c.getJSON(ctx, "/api/quiz", q, &resp); err != nil {
		return nil, err
	}
	if resp.Questions == nil {
		resp.Questions = []quiz.Question{}
	}
	return &resp, nil
}

// FetchEvents lists history events matching the given filters.
func (c *Client) FetchEvents(ctx context.Context, params EventParams) ([]Event, error) {
	q := url.Values{}
	if params.DayKey != "" {
		q.Set("mmdd", params.DayKey)
	}
	if params.Query != "" {
		q.Set("q", params.Query)
	}
	if params.Category != "" {
		q.Set("category", params.Category)
	}
	if params.StartYear > 0 {
		q.Set("start_year", strconv.Itoa(params.StartYear))
	}
	if params.EndYear > 0 {
		q.Set("end_year", strconv.Itoa(params.EndYear))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}

	var resp struct {
		Count  int     `json:"count"`
		Events []Event `json:"events"`
	}
	if err := c.getJSON(ctx, "/api/events", q, &resp); err != nil {
		return nil, err
	}
	return resp.Events, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	c.logger.Debug("api request", "url", u)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("api error", "path", path, "status", resp.StatusCode)
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
