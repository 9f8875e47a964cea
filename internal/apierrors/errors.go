// Package apierrors provides shared error types for the OneTimeSecret client.
package apierrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrIncompleteCredentials is returned when only one of username and API key is set.
	ErrIncompleteCredentials = errors.New("username and API key must be set together")

	// ErrInvalidBaseURL is returned when the API base URL has no scheme or host.
	ErrInvalidBaseURL = errors.New("invalid API base URL")

	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = errors.New("client has been closed")

	// ErrPassphraseRequired is returned when a secret needs a passphrase and none was given.
	ErrPassphraseRequired = errors.New("passphrase required")

	// ErrNotImplemented is returned by operations the API does not offer yet.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnauthorized is returned when the credentials are rejected.
	ErrUnauthorized = errors.New("invalid username or API key")

	// ErrNotFound is returned when a secret or metadata record does not exist
	// or has already been viewed.
	ErrNotFound = errors.New("secret not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// TransportError is a network level failure or a non-2xx response whose body
// could not be decoded as an API error message.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int    // 0 if no response was received
	Status     string // e.g. "500 Internal Server Error"
	Body       []byte // raw response body, nil if no response
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("transport error: %s %s: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("transport error: %s %s: %s", e.Method, e.URL, e.Status)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// OTSError implements the onetimesecret.Error marker interface.
func (e *TransportError) OTSError() {}

// APIError is a non-2xx response carrying a structured error message.
type APIError struct {
	StatusCode int
	Message    string
	Err        error // the *TransportError the message was decoded from
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Unwrap returns the underlying transport error.
func (e *APIError) Unwrap() error {
	return e.Err
}

// OTSError implements the onetimesecret.Error marker interface.
func (e *APIError) OTSError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 404:
		return target == ErrNotFound
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// DecodeError is a successful response whose body does not match the
// expected result shape.
type DecodeError struct {
	Target string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Target, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// OTSError implements the onetimesecret.Error marker interface.
func (e *DecodeError) OTSError() {}
