// Package catalog fetches the property catalog from the external
// feature service. Every search re-fetches the full catalog; there is
// no pagination and no local cache.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"casafinder/internal/model"
)

// ErrUnavailable is the hard failure kind for the catalog source: the
// service could not be reached, kept failing past the retry budget, or
// returned malformed data. Callers must surface it as "search failed",
// never as "zero matches".
var ErrUnavailable = errors.New("catalog unavailable")

// Config tunes the HTTP client and its retry/breaker policy.
type Config struct {
	BaseURL          string
	Timeout          time.Duration
	RetryMaxAttempts int
	RetryBackoff     time.Duration
	RatePerSecond    float64
	RateBurst        int
}

func (c Config) normalize() Config {
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.RetryMaxAttempts <= 0 {
		c.RetryMaxAttempts = 3
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = 500 * time.Millisecond
	}
	if c.RatePerSecond <= 0 {
		c.RatePerSecond = 5
	}
	if c.RateBurst <= 0 {
		c.RateBurst = 5
	}
	return c
}

// Client talks to an ArcGIS-style FeatureServer query endpoint.
type Client struct {
	cfg     Config
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]model.Casa]
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewClient builds a catalog client. The breaker opens after repeated
// failures so a dead upstream fails fast instead of burning the retry
// budget on every turn.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	cfg = cfg.normalize()
	if logger == nil {
		logger = slog.Default()
	}

	settings := gobreaker.Settings{
		Name:    "catalog-fetch",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= 5 && float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("catalog breaker state change", "from", from.String(), "to", to.String())
		},
	}

	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		breaker: gobreaker.NewCircuitBreaker[[]model.Casa](settings),
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst),
		logger:  logger,
	}
}

// FetchAll retrieves every property record. Failures come back wrapped
// in ErrUnavailable after the retry budget is spent or while the
// breaker is open.
func (c *Client) FetchAll(ctx context.Context) ([]model.Casa, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	casas, err := c.breaker.Execute(func() ([]model.Casa, error) {
		return c.fetchWithRetry(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: circuit open: %v", ErrUnavailable, err)
		}
		return nil, err
	}
	return casas, nil
}

func (c *Client) fetchWithRetry(ctx context.Context) ([]model.Casa, error) {
	backoff := c.cfg.RetryBackoff
	var lastErr error

	for attempt := 1; attempt <= c.cfg.RetryMaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		casas, err := c.fetchOnce(ctx)
		if err == nil {
			return casas, nil
		}
		lastErr = err

		if attempt == c.cfg.RetryMaxAttempts {
			break
		}
		c.logger.Warn("catalog fetch failed, retrying",
			"attempt", attempt,
			"max_attempts", c.cfg.RetryMaxAttempts,
			"backoff", backoff,
			"error", err,
		)
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
		backoff *= 2
	}

	return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

// featureResponse mirrors the feature service payload. The service
// reports its own errors inside a 200 response, so Error must be
// checked before Features.
type featureResponse struct {
	Features []feature     `json:"features"`
	Error    *serviceError `json:"error,omitempty"`
}

type feature struct {
	Attributes model.Casa   `json:"attributes"`
	Geometry   *model.Point `json:"geometry,omitempty"`
}

type serviceError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (c *Client) fetchOnce(ctx context.Context) ([]model.Casa, error) {
	query := url.Values{
		"where":          {"1=1"},
		"outFields":      {"*"},
		"f":              {"json"},
		"returnGeometry": {"true"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var payload featureResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	if payload.Error != nil {
		return nil, fmt.Errorf("catalog service error %d: %s", payload.Error.Code, payload.Error.Message)
	}

	casas := make([]model.Casa, 0, len(payload.Features))
	for _, f := range payload.Features {
		casa := f.Attributes
		casa.Geometry = f.Geometry
		casas = append(casas, casa)
	}
	return casas, nil
}
