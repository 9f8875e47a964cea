package api

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/onetimesecret/client-go/internal/apierrors"
)

// DefaultBaseURL is the public OneTimeSecret API.
const DefaultBaseURL = "https://onetimesecret.com/api/v1"

// Config holds configuration for creating a new API client.
type Config struct {
	// BaseURL is the API root, e.g. https://onetimesecret.com/api/v1.
	BaseURL string
	// Username and APIKey enable Basic authentication. Both or neither.
	Username string
	APIKey   string
	// HTTPClient is used for all requests. A client without a timeout is
	// created when nil.
	HTTPClient *http.Client
	// Logger receives one debug record per request. Discarded when nil.
	Logger *slog.Logger
}

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	origin     string // scheme://host[:port] of baseURL
	authHeader string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new API client with the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if (cfg.Username == "") != (cfg.APIKey == "") {
		return nil, apierrors.ErrIncompleteCredentials
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apierrors.ErrInvalidBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", apierrors.ErrInvalidBaseURL, cfg.BaseURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Client{
		baseURL:    baseURL,
		origin:     u.Scheme + "://" + u.Host,
		httpClient: httpClient,
		logger:     logger,
	}
	if cfg.Username != "" {
		token := base64.StdEncoding.EncodeToString([]byte(cfg.Username + ":" + cfg.APIKey))
		c.authHeader = "Basic " + token
	}

	return c, nil
}

// BaseURL returns the API root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SiteURL returns path resolved against the scheme, host and port of the
// API base URL.
func (c *Client) SiteURL(path string) string {
	return c.origin + path
}

// CloseIdleConnections closes idle connections held by the HTTP client.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// PostForm sends form as an application/x-www-form-urlencoded POST body to
// path and returns the raw response body. An empty form still sends a
// request with an empty body.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values) ([]byte, error) {
	return c.roundTrip(ctx, http.MethodPost, path, form)
}

// Get issues a GET request for path and returns the raw response body.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	return c.roundTrip(ctx, http.MethodGet, path, nil)
}

// roundTrip executes a single request. Any failure, including a non-2xx
// status, is returned as an *apierrors.TransportError.
func (c *Client) roundTrip(ctx context.Context, method, path string, form url.Values) ([]byte, error) {
	endpoint := c.baseURL + path

	var body io.Reader
	if method == http.MethodPost {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if c.authHeader != "" {
		req.Header.Set("Authorization", c.authHeader)
	}
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &apierrors.TransportError{Method: method, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)

	c.logger.LogAttrs(ctx, slog.LevelDebug, "api request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if err != nil {
		return nil, &apierrors.TransportError{
			Method:     method,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Err:        fmt.Errorf("read response body: %w", err),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &apierrors.TransportError{
			Method:     method,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       data,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	return data, nil
}
