// Package seekerapi is the client for the upstream job-seeker REST API:
// the applications list and the stats summary shown on the dashboard.
package seekerapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dalemusser/seekerhub/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries a per-request correlation id to the upstream.
const RequestIDHeader = "X-Request-ID"

// maxBody caps how much of an upstream response is decoded.
const maxBody = 4 << 20

// Config describes where the upstream endpoints live.
type Config struct {
	BaseURL          string // e.g. "http://localhost:8000"
	ApplicationsPath string // e.g. "/api/applications/me"
	StatsPath        string // e.g. "/api/applications/stats"

	// RateLimit is the sustained requests/second allowed towards the
	// upstream across all callers; 0 disables limiting.
	RateLimit float64
	Burst     int
}

// Client issues single-attempt GETs against the upstream. No retries.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

// New builds a Client. A nil httpClient uses http.DefaultClient.
func New(cfg Config, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		cfg:  cfg,
		http: httpClient,
		log:  logger,
	}
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return c
}

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s: status %d", e.URL, e.Code)
}

// ListApplications fetches the current job seeker's applications.
// A JSON null body yields a nil slice and no error.
func (c *Client) ListApplications(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	if err := c.getJSON(ctx, c.cfg.ApplicationsPath, &apps); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

// FetchStats fetches the stats summary. Missing fields are 0.
func (c *Client) FetchStats(ctx context.Context) (models.Stats, error) {
	var s models.Stats
	if err := c.getJSON(ctx, c.cfg.StatsPath, &s); err != nil {
		return models.Stats{}, fmt.Errorf("fetch stats: %w", err)
	}
	return s, nil
}

// Ping checks the upstream is reachable. Any response below 500 counts.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, "/")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))

	if resp.StatusCode >= http.StatusInternalServerError {
		return &StatusError{Code: resp.StatusCode, URL: resp.Request.URL.String()}
	}
	return nil
}

// CloseIdleConnections releases pooled upstream connections.
func (c *Client) CloseIdleConnections() {
	c.http.CloseIdleConnections()
}

func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	resp, err := c.do(ctx, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return &StatusError{Code: resp.StatusCode, URL: resp.Request.URL.String()}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, path string) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	reqID := RequestIDFrom(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	req.Header.Set(RequestIDHeader, reqID)

	hc := c.http
	if tok := TokenFrom(ctx); tok != "" {
		hc = &http.Client{
			Transport: &oauth2.Transport{
				Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: tok, TokenType: "Bearer"}),
				Base:   c.http.Transport,
			},
			Timeout:       c.http.Timeout,
			CheckRedirect: c.http.CheckRedirect,
			Jar:           c.http.Jar,
		}
	}

	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}

	c.log.Debug("upstream request",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", reqID))
	return resp, nil
}
