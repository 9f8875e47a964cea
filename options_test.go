package onetimesecret

import (
	"log/slog"
	"net/http"
	"testing"
	"time"
)

func TestDefaultConstants(t *testing.T) {
	if DefaultBaseURL != "https://onetimesecret.com/api/v1" {
		t.Errorf("DefaultBaseURL = %s, want https://onetimesecret.com/api/v1", DefaultBaseURL)
	}
	if anonymousUsername != "anon" {
		t.Errorf("anonymousUsername = %s, want anon", anonymousUsername)
	}
}

func TestWithBaseURL(t *testing.T) {
	cfg := &clientConfig{}
	WithBaseURL("https://ots.example.com/api/v1")(cfg)
	if cfg.baseURL != "https://ots.example.com/api/v1" {
		t.Errorf("baseURL = %s, want https://ots.example.com/api/v1", cfg.baseURL)
	}
}

func TestWithCredentials(t *testing.T) {
	cfg := &clientConfig{}
	WithCredentials("alice@example.com", "key")(cfg)
	if cfg.username != "alice@example.com" || cfg.apiKey != "key" {
		t.Errorf("credentials = %q/%q, want alice@example.com/key", cfg.username, cfg.apiKey)
	}
}

func TestWithHTTPClient(t *testing.T) {
	cfg := &clientConfig{}
	customClient := &http.Client{Timeout: 99 * time.Second}
	WithHTTPClient(customClient)(cfg)
	if cfg.httpClient != customClient {
		t.Error("httpClient was not set")
	}
}

func TestWithTimeout(t *testing.T) {
	cfg := &clientConfig{}
	WithTimeout(15 * time.Second)(cfg)
	if cfg.timeout != 15*time.Second {
		t.Errorf("timeout = %v, want 15s", cfg.timeout)
	}
}

func TestWithLogger(t *testing.T) {
	cfg := &clientConfig{}
	logger := slog.New(slog.DiscardHandler)
	WithLogger(logger)(cfg)
	if cfg.logger != logger {
		t.Error("logger was not set")
	}
}
