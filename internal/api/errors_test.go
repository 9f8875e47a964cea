package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/onetimesecret/client-go/internal/apierrors"
)

func TestDecodeErrorMessage(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{"message", `{"message":"rate limited"}`, "rate limited", false},
		{"extra fields", `{"message":"Unknown secret","shrimp":"x"}`, "Unknown secret", false},
		{"object without message", `{}`, "", false},
		{"empty body", ``, "", true},
		{"malformed json", `{"message":`, "", true},
		{"html page", `<html>502 Bad Gateway</html>`, "", true},
		{"null", `null`, "", true},
		{"array", `["rate limited"]`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := decodeErrorMessage([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Errorf("decodeErrorMessage(%q) = %+v, want error", tt.body, msg)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeErrorMessage(%q) error = %v", tt.body, err)
			}
			if msg.Message != tt.want {
				t.Errorf("Message = %q, want %q", msg.Message, tt.want)
			}
		})
	}
}

func TestTranslateError_DecodableBody(t *testing.T) {
	transportErr := &apierrors.TransportError{
		Method:     "POST",
		URL:        "https://onetimesecret.com/api/v1/share",
		StatusCode: 429,
		Status:     "429 Too Many Requests",
		Body:       []byte(`{"message":"rate limited"}`),
	}

	err := translateError(transportErr)

	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("translateError() = %T, want *apierrors.APIError", err)
	}
	if apiErr.Message != "rate limited" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "rate limited")
	}
	if apiErr.StatusCode != 429 {
		t.Errorf("StatusCode = %d, want 429", apiErr.StatusCode)
	}
	if apiErr.Err != transportErr {
		t.Error("APIError should wrap the original transport error")
	}
}

func TestTranslateError_UndecodableBodyKeepsTransportError(t *testing.T) {
	for _, body := range [][]byte{nil, {}, []byte("not json"), []byte(`{"message":`)} {
		t.Run(fmt.Sprintf("%q", body), func(t *testing.T) {
			transportErr := &apierrors.TransportError{StatusCode: 500, Status: "500 Internal Server Error", Body: body}

			err := translateError(transportErr)
			if err != error(transportErr) {
				t.Errorf("translateError() = %v, want original transport error", err)
			}

			var decodeErr *apierrors.DecodeError
			if errors.As(err, &decodeErr) {
				t.Error("decode failure must not replace the transport error")
			}
		})
	}
}

func TestTranslateError_NoResponse(t *testing.T) {
	transportErr := &apierrors.TransportError{Method: "GET", URL: "https://example.invalid/status", Err: errors.New("no such host")}

	if err := translateError(transportErr); err != error(transportErr) {
		t.Errorf("translateError() = %v, want original transport error", err)
	}
}

func TestTranslateError_OtherErrorsUnchanged(t *testing.T) {
	original := errors.New("failed to create request")
	if err := translateError(original); err != original {
		t.Errorf("translateError() = %v, want %v", err, original)
	}
}

func TestDecode(t *testing.T) {
	secret, err := Decode[Secret]([]byte(`{"secret_key":"abc123","value":"hello","unknown":1}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if secret.SecretKey != "abc123" || secret.Value != "hello" {
		t.Errorf("Decode() = %+v", secret)
	}
}

func TestDecode_MissingFieldsUseZeroValues(t *testing.T) {
	meta, err := Decode[SecretMetadata]([]byte(`{"secret_key":"abc123"}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if meta.SecretKey != "abc123" {
		t.Errorf("SecretKey = %q, want abc123", meta.SecretKey)
	}
	if meta.TTL != 0 || meta.Recipient != "" || meta.PassphraseRequired || meta.State != "" {
		t.Errorf("unexpected non-zero fields: %+v", meta)
	}
}

func TestDecode_Failure(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"secret_key":`},
		{"wrong type", `{"ttl":"an hour"}`},
		{"not an object", `[1,2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode[GeneratedSecret]([]byte(tt.body))
			var decodeErr *apierrors.DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("Decode() error = %v, want *apierrors.DecodeError", err)
			}
			if decodeErr.Target != "api.GeneratedSecret" {
				t.Errorf("Target = %q, want api.GeneratedSecret", decodeErr.Target)
			}
		})
	}
}
