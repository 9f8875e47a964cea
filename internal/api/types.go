package api

import "time"

// Metadata is the field set shared by every response describing a stored
// secret. JSON keys follow the server, including its spelling of
// "recepient".
type Metadata struct {
	// CustomerID is the account that owns the secret ("anon" for anonymous shares).
	CustomerID string `json:"custid"`
	// MetadataKey gives access to this metadata. Do not share it.
	MetadataKey string `json:"metadata_key"`
	// SecretKey gives access to the secret. This is the key to share.
	SecretKey string `json:"secret_key"`
	// TTL is the time-to-live that was requested, in seconds.
	TTL int `json:"ttl"`
	// MetadataTTL is the remaining lifetime of the metadata, in seconds.
	MetadataTTL int `json:"metadata_ttl"`
	// SecretTTL is the remaining lifetime of the secret, in seconds.
	SecretTTL int `json:"secret_ttl"`
	// Recipient is the obfuscated recipient address, empty if none was given.
	Recipient string `json:"recepient"`
	// Created is the creation time in unix seconds (UTC).
	Created int64 `json:"created"`
	// Updated is passed through as returned by the server.
	Updated int64 `json:"updated"`
	// PassphraseRequired reports whether the secret was shared with a passphrase.
	PassphraseRequired bool `json:"passphrase_required"`
}

// CreatedAt returns Created as a UTC time, or the zero time if unset.
func (m Metadata) CreatedAt() time.Time {
	return unixUTC(m.Created)
}

// SharedSecret is the /share response.
type SharedSecret struct {
	Metadata
}

// GeneratedSecret is the /generate response.
type GeneratedSecret struct {
	Metadata
	// Value is the generated secret.
	Value string `json:"value"`
}

// SecretState is the lifecycle state of a stored secret.
type SecretState string

const (
	// StateNew means the secret has not been viewed.
	StateNew SecretState = "new"
	// StateReceived means the secret has been viewed and is gone.
	StateReceived SecretState = "received"
)

// SecretMetadata is the /private/{key} response.
type SecretMetadata struct {
	Metadata
	// Received is the time the secret was viewed in unix seconds (UTC).
	Received int64 `json:"recieved"`
	// State is the lifecycle state.
	State SecretState `json:"state"`
}

// ReceivedAt returns Received as a UTC time, or the zero time if unset.
func (m SecretMetadata) ReceivedAt() time.Time {
	return unixUTC(m.Received)
}

// Secret is the /secret/{key} response. The server deletes the secret as
// it answers, so Value can be retrieved only once.
type Secret struct {
	SecretKey string `json:"secret_key"`
	Value     string `json:"value"`
}

// SystemStatus classifies the server status string.
type SystemStatus int

const (
	// StatusUnknown is any status string other than "nominal" or "offline".
	StatusUnknown SystemStatus = iota
	// StatusNominal means the server is fully functional.
	StatusNominal
	// StatusOffline means the server is offline.
	StatusOffline
)

// String returns the lowercase name of the status.
func (s SystemStatus) String() string {
	switch s {
	case StatusNominal:
		return "nominal"
	case StatusOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// Status is the /status response.
type Status struct {
	// Status is the raw status string returned by the server.
	Status string `json:"status"`
}

// System classifies Status by exact match.
func (s Status) System() SystemStatus {
	switch s.Status {
	case "nominal":
		return StatusNominal
	case "offline":
		return StatusOffline
	default:
		return StatusUnknown
	}
}

// ErrorMessage is the body of a failed request.
type ErrorMessage struct {
	Message string `json:"message"`
}

func unixUTC(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}
