package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/wfm-tools/keeper/internal/auth"
)

// DefaultBaseURL is the production REST endpoint.
const DefaultBaseURL = "https://api.warframe.market/v1"

// Limiter gates outgoing requests. *rate.Limiter satisfies it.
type Limiter interface {
	Wait(ctx context.Context) error
}

// NewLimiter returns a limiter tuned to the marketplace's request budget:
// one request per interval with no burst. Non-positive intervals fall back
// to one second. A process talking to the API should create one limiter and
// share it across every client it builds.
func NewLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		interval = time.Second
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// Client provides access to the Warframe Market REST API.
type Client struct {
	baseURL    string
	creds      *auth.Credentials
	httpClient *http.Client
	limiter    Limiter
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new REST API client. Without WithCredentials the
// client is anonymous: it can sign in and read public endpoints, but the
// profile endpoints reject it.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.limiter == nil {
		c.limiter = NewLimiter(time.Second)
	}

	return c
}

// WithCredentials sets the credentials whose headers authenticated
// requests carry.
func WithCredentials(creds *auth.Credentials) ClientOption {
	return func(c *Client) {
		c.creds = creds
	}
}

// WithLimiter sets the rate limiter. Pass the same limiter to every client
// in the process so the request budget is shared.
func WithLimiter(l Limiter) ClientOption {
	return func(c *Client) {
		c.limiter = l
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}
