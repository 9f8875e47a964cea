package api

import (
	"context"
	"net/url"
)

// Share stores secret with the optional fields in params.
func (c *Client) Share(ctx context.Context, secret string, params SharingParams) (*SharedSecret, error) {
	form, err := params.Values()
	if err != nil {
		return nil, err
	}
	form.Set("secret", secret)
	return result[SharedSecret](c.PostForm(ctx, "/share", form))
}

// Generate asks the server to create a short random secret.
func (c *Client) Generate(ctx context.Context, params SharingParams) (*GeneratedSecret, error) {
	form, err := params.Values()
	if err != nil {
		return nil, err
	}
	return result[GeneratedSecret](c.PostForm(ctx, "/generate", form))
}

// RetrieveSecret fetches and burns the secret identified by secretKey. A nil
// passphrase sends an empty body.
func (c *Client) RetrieveSecret(ctx context.Context, secretKey string, passphrase *string) (*Secret, error) {
	form, err := SharingParams{Passphrase: passphrase}.Values()
	if err != nil {
		return nil, err
	}
	return result[Secret](c.PostForm(ctx, "/secret/"+url.PathEscape(secretKey), form))
}

// RetrieveMetadata fetches the metadata record identified by metadataKey.
func (c *Client) RetrieveMetadata(ctx context.Context, metadataKey string) (*SecretMetadata, error) {
	return result[SecretMetadata](c.PostForm(ctx, "/private/"+url.PathEscape(metadataKey), nil))
}

// Status returns the current server status.
func (c *Client) Status(ctx context.Context) (*Status, error) {
	return result[Status](c.Get(ctx, "/status"))
}

// result decodes the outcome of a request into T, routing failures through
// the error translator.
func result[T any](data []byte, err error) (*T, error) {
	if err != nil {
		return nil, translateError(err)
	}
	return Decode[T](data)
}
