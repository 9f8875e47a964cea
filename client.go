package onetimesecret

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"github.com/onetimesecret/client-go/internal/api"
)

// Client is a connection to a OneTimeSecret server.
//
// A Client is safe for concurrent use. Close releases its HTTP transport;
// every network operation after Close returns ErrClientClosed.
type Client struct {
	apiClient *api.Client
	username  string
	mu        sync.RWMutex
	closed    bool
}

// New creates a client for the OneTimeSecret API. Without WithCredentials
// the client is anonymous.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.timeout}
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		Username:   cfg.username,
		APIKey:     cfg.apiKey,
		HTTPClient: httpClient,
		Logger:     cfg.logger,
	})
	if err != nil {
		return nil, err
	}

	username := cfg.username
	if username == "" {
		username = anonymousUsername
	}

	return &Client{
		apiClient: apiClient,
		username:  username,
	}, nil
}

// APIURL returns the API base URL in use.
func (c *Client) APIURL() string {
	return c.apiClient.BaseURL()
}

// Username returns the configured username, or "anon" for an anonymous client.
func (c *Client) Username() string {
	return c.username
}

// checkClosed returns ErrClientClosed if the client has been closed.
func (c *Client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// ShareSecret stores secret on the server. Settings left unset in opts use
// the server defaults.
func (c *Client) ShareSecret(ctx context.Context, secret string, opts SharingOptions) (*SharedSecret, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	return c.apiClient.Share(ctx, secret, opts.params())
}

// ShareSecretWithPassphrase stores secret protected by passphrase.
func (c *Client) ShareSecretWithPassphrase(ctx context.Context, secret, passphrase string) (*SharedSecret, error) {
	return c.ShareSecret(ctx, secret, NewSharingOptions(passphrase))
}

// GenerateSecret asks the server for a short random secret, useful for
// temporary passwords, one-time pads and salts.
func (c *Client) GenerateSecret(ctx context.Context, opts SharingOptions) (*GeneratedSecret, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	return c.apiClient.Generate(ctx, opts.params())
}

// GenerateSecretWithPassphrase generates a secret protected by passphrase.
func (c *Client) GenerateSecretWithPassphrase(ctx context.Context, passphrase string) (*GeneratedSecret, error) {
	return c.GenerateSecret(ctx, NewSharingOptions(passphrase))
}

// RetrieveSecret fetches the secret identified by secretKey. The server
// deletes the secret as it answers; it cannot be retrieved again.
func (c *Client) RetrieveSecret(ctx context.Context, secretKey string) (*Secret, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	return c.apiClient.RetrieveSecret(ctx, secretKey, nil)
}

// RetrieveSecretWithPassphrase fetches a passphrase protected secret.
func (c *Client) RetrieveSecretWithPassphrase(ctx context.Context, secretKey, passphrase string) (*Secret, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	return c.apiClient.RetrieveSecret(ctx, secretKey, &passphrase)
}

// RetrieveSecretFor fetches the secret described by meta. It returns
// ErrPassphraseRequired without contacting the server when
// meta.PassphraseRequired is set.
func (c *Client) RetrieveSecretFor(ctx context.Context, meta Metadata) (*Secret, error) {
	if meta.PassphraseRequired {
		return nil, ErrPassphraseRequired
	}
	return c.RetrieveSecret(ctx, meta.SecretKey)
}

// RetrieveSecretForWithPassphrase fetches the secret described by meta
// using passphrase.
func (c *Client) RetrieveSecretForWithPassphrase(ctx context.Context, meta Metadata, passphrase string) (*Secret, error) {
	return c.RetrieveSecretWithPassphrase(ctx, meta.SecretKey, passphrase)
}

// RetrieveMetadata fetches what the server knows about a secret, such as
// whether and when it was viewed, using the private metadata key.
func (c *Client) RetrieveMetadata(ctx context.Context, metadataKey string) (*SecretMetadata, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	return c.apiClient.RetrieveMetadata(ctx, metadataKey)
}

// Status returns the current server status.
func (c *Client) Status(ctx context.Context) (*Status, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	return c.apiClient.Status(ctx)
}

// SecretLink returns the web address where the secret described by meta can
// be viewed. This is the link to give to the recipient.
func (c *Client) SecretLink(meta Metadata) string {
	return c.apiClient.SiteURL("/secret/" + url.PathEscape(meta.SecretKey))
}

// MetadataLink returns the web address of the private metadata page for
// meta. Do not share it.
func (c *Client) MetadataLink(meta Metadata) string {
	return c.apiClient.SiteURL("/private/" + url.PathEscape(meta.MetadataKey))
}

// RegisterUser creates a new account. The API does not offer registration
// yet, so it always returns ErrNotImplemented.
func RegisterUser(ctx context.Context, username, password string) error {
	return ErrNotImplemented
}

// Close closes the client and releases its HTTP transport. Calling Close
// more than once is a no-op.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true
	c.apiClient.CloseIdleConnections()

	return nil
}
