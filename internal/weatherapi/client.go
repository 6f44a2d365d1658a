package weatherapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sony/gobreaker"

	"weathergrip/internal/domain"
)

const maxBodyBytes = 1 << 20

var ErrNotConfigured = errors.New("weatherapi: client not configured")

// StatusError is returned for non-2xx responses
type StatusError struct {
	StatusCode int
	Message    string // upstream error message, if the body carried one
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("weatherapi: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("weatherapi: status %d", e.StatusCode)
}

func (e *StatusError) Unwrap() error { return domain.ErrNetwork }

// BreakerSettings configures the optional circuit breaker.
// The breaker only fails fast while the upstream is unhealthy; it never retries.
type BreakerSettings struct {
	MaxFailures uint32
	OpenTimeout time.Duration
}

// Client fetches current conditions from a WeatherAPI.com compatible endpoint
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	circuit    *gobreaker.CircuitBreaker
	validate   *validator.Validate
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the default http client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout on the default http client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithBreaker puts a circuit breaker in front of the endpoint
func WithBreaker(s BreakerSettings) Option {
	return func(c *Client) {
		if s.MaxFailures == 0 {
			s.MaxFailures = 5
		}
		c.circuit = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "weatherapi",
			MaxRequests: 1,
			Timeout:     s.OpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= s.MaxFailures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Printf("Circuit breaker %s: %s -> %s", name, from, to)
			},
		})
	}
}

// New creates a client for baseURL (e.g. "https://api.weatherapi.com/v1")
func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:     strings.TrimSpace(apiKey),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		validate:   newValidator(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchCurrentConditions retrieves and normalizes current conditions for query
func (c *Client) FetchCurrentConditions(ctx context.Context, query string) (domain.WeatherSnapshot, error) {
	if c.baseURL == "" || c.apiKey == "" {
		return domain.WeatherSnapshot{}, fmt.Errorf("%w: %w", domain.ErrNetwork, ErrNotConfigured)
	}

	endpoint, err := c.currentURL(query)
	if err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("%w: %w", domain.ErrNetwork, err)
	}

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return domain.WeatherSnapshot{}, err
	}

	var payload currentResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("%w: failed to parse response: %v", domain.ErrMalformedResponse, err)
	}

	return toSnapshot(c.validate, &payload)
}

func (c *Client) currentURL(query string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", c.baseURL, err)
	}
	u = u.JoinPath("current.json")

	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("q", query)
	values.Set("aqi", "no")
	u.RawQuery = values.Encode()

	return u.String(), nil
}

// get performs the request and returns the body of a 2xx response
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	do := func() (*http.Response, []byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, nil, err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read response body: %w", err)
		}
		if resp.StatusCode >= 500 {
			return resp, body, statusError(resp.StatusCode, body)
		}
		return resp, body, nil
	}

	var (
		resp *http.Response
		body []byte
		err  error
	)
	if c.circuit == nil {
		resp, body, err = do()
	} else {
		// Only transport failures and 5xx count against the breaker
		_, err = c.circuit.Execute(func() (interface{}, error) {
			var execErr error
			resp, body, execErr = do()
			return nil, execErr
		})
	}

	if err != nil {
		var se *StatusError
		if errors.As(err, &se) {
			return nil, se
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(resp.StatusCode, body)
	}

	return body, nil
}

func statusError(code int, body []byte) *StatusError {
	se := &StatusError{StatusCode: code}
	var er errorResponse
	if json.Unmarshal(body, &er) == nil && er.Error.Message != "" {
		se.Message = er.Error.Message
	}
	return se
}
