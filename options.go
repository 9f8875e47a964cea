package onetimesecret

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/onetimesecret/client-go/internal/api"
)

// DefaultBaseURL is the API root used when WithBaseURL is not given.
const DefaultBaseURL = api.DefaultBaseURL

// anonymousUsername is reported by Username for clients without credentials.
const anonymousUsername = "anon"

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	username   string
	apiKey     string
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
// Default: https://onetimesecret.com/api/v1
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithCredentials authenticates every request with the account username
// (usually an e-mail address) and its API key. Without it the client is
// anonymous.
func WithCredentials(username, apiKey string) Option {
	return func(c *clientConfig) {
		c.username = username
		c.apiKey = apiKey
	}
}

// WithHTTPClient sets a custom HTTP client. The client owns it from then on
// and closes its idle connections on Close.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets a per-request timeout on the default HTTP client. It is
// ignored when WithHTTPClient is used.
// Default: no timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger that receives a debug record per request.
// Default: discard
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
