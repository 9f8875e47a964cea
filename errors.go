package onetimesecret

import "github.com/onetimesecret/client-go/internal/apierrors"

// Sentinel errors for errors.Is() checks
var (
	// ErrIncompleteCredentials is returned by New when only one of username
	// and API key is set.
	ErrIncompleteCredentials = apierrors.ErrIncompleteCredentials

	// ErrInvalidBaseURL is returned by New when the base URL has no scheme or host.
	ErrInvalidBaseURL = apierrors.ErrInvalidBaseURL

	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = apierrors.ErrClientClosed

	// ErrPassphraseRequired is returned by RetrieveSecretFor when the
	// metadata says a passphrase is needed. No request is sent.
	ErrPassphraseRequired = apierrors.ErrPassphraseRequired

	// ErrNotImplemented is returned by RegisterUser.
	ErrNotImplemented = apierrors.ErrNotImplemented

	// ErrUnauthorized matches an APIError with status 401.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrNotFound matches an APIError with status 404: the key is unknown or
	// the secret was already viewed.
	ErrNotFound = apierrors.ErrNotFound

	// ErrRateLimited matches an APIError with status 429.
	ErrRateLimited = apierrors.ErrRateLimited
)

// Error is implemented by the structured errors returned from API calls.
type Error interface {
	error
	OTSError() // marker method
}

// APIError is a failed request whose body carried an error message from the
// server. Message is that message verbatim. It wraps the TransportError.
type APIError = apierrors.APIError

// TransportError is a network failure, or a non-2xx response whose body was
// not a structured error message. StatusCode is 0 when no response arrived.
type TransportError = apierrors.TransportError

// DecodeError is a successful response that did not match the expected
// result type.
type DecodeError = apierrors.DecodeError

var (
	_ Error = (*APIError)(nil)
	_ Error = (*TransportError)(nil)
	_ Error = (*DecodeError)(nil)
)
