// Package nws is a small client for the National Weather Service API.
//
// API docs: https://www.weather.gov/documentation/services-web-api
package nws

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tidwall/gjson"
)

const (
	DefaultBaseURL   = "https://api.weather.gov"
	DefaultUserAgent = "weather-app/1.0"
	DefaultTimeout   = 30 * time.Second

	acceptGeoJSON = "application/geo+json"
)

var (
	ErrBadStatus   = errors.New("unexpected status")
	ErrInvalidJSON = errors.New("invalid JSON body")
	ErrNotObject   = errors.New("JSON body is not an object")
)

// Client issues GET requests against the NWS API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *log.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithBaseURL points the client at another API root, mostly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient returns a client with the default base URL, user agent and a
// 30 second timeout unless overridden.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			// a 3xx is returned as-is so the status check rejects it
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		baseURL:    DefaultBaseURL,
		userAgent:  DefaultUserAgent,
		logger:     log.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// AlertsURL returns the active alerts endpoint for an area code. The code is
// used as given.
func (c *Client) AlertsURL(area string) string {
	return c.baseURL + "/alerts/active/area/" + area
}

// PointsURL returns the points endpoint for a coordinate.
func (c *Client) PointsURL(latitude, longitude float64) string {
	return c.baseURL + "/points/" + formatCoordinate(latitude) + "," + formatCoordinate(longitude)
}

func formatCoordinate(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Fetch performs a single GET against url. It never returns an error: every
// failure is logged with the URL and carried in the returned Response. A
// logger stored in ctx with log.WithContext takes precedence over the
// client's own.
func (c *Client) Fetch(ctx context.Context, url string) Response {
	doc, err := c.get(ctx, url)
	if err != nil {
		c.loggerFor(ctx).Error("NWS request failed", "url", url, "err", err)
		return Response{err: err}
	}

	return Response{doc: doc}
}

func (c *Client) loggerFor(ctx context.Context) *log.Logger {
	if logger, ok := ctx.Value(log.ContextKey).(*log.Logger); ok && logger != nil {
		return logger
	}
	return c.logger
}

func (c *Client) get(ctx context.Context, url string) (gjson.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", acceptGeoJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return gjson.Result{}, fmt.Errorf("%w %d: %s", ErrBadStatus, resp.StatusCode, truncate(body, 256))
	}

	if !gjson.ValidBytes(body) {
		return gjson.Result{}, ErrInvalidJSON
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return gjson.Result{}, ErrNotObject
	}

	return doc, nil
}

func truncate(body []byte, n int) string {
	s := strings.TrimSpace(string(body))
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
