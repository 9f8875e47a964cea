package onetimesecret

import (
	"errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrIncompleteCredentials", ErrIncompleteCredentials},
		{"ErrInvalidBaseURL", ErrInvalidBaseURL},
		{"ErrClientClosed", ErrClientClosed},
		{"ErrPassphraseRequired", ErrPassphraseRequired},
		{"ErrNotImplemented", ErrNotImplemented},
		{"ErrUnauthorized", ErrUnauthorized},
		{"ErrNotFound", ErrNotFound},
		{"ErrRateLimited", ErrRateLimited},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if s.err == nil {
				t.Error("sentinel error is nil")
			}
			if s.err.Error() == "" {
				t.Error("sentinel error has empty message")
			}
		})
	}
}

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		target     error
		expected   bool
	}{
		{"401 matches ErrUnauthorized", 401, ErrUnauthorized, true},
		{"404 matches ErrNotFound", 404, ErrNotFound, true},
		{"429 matches ErrRateLimited", 429, ErrRateLimited, true},
		{"500 does not match ErrUnauthorized", 500, ErrUnauthorized, false},
		{"400 does not match ErrNotFound", 400, ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &APIError{StatusCode: tt.statusCode}
			result := errors.Is(err, tt.target)
			if result != tt.expected {
				t.Errorf("errors.Is() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestErrorInterface(t *testing.T) {
	errs := []error{
		&APIError{StatusCode: 400, Message: "bad"},
		&TransportError{Method: "GET", URL: "u", Err: errors.New("refused")},
		&DecodeError{Target: "api.Secret", Err: errors.New("eof")},
	}

	for _, err := range errs {
		var ots Error
		if !errors.As(err, &ots) {
			t.Errorf("%T does not implement Error", err)
		}
	}

	var ots Error
	if errors.As(ErrPassphraseRequired, &ots) {
		t.Error("precondition sentinels should not implement Error")
	}
}
