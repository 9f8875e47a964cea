package onetimesecret

import "github.com/onetimesecret/client-go/internal/api"

// Metadata describes a stored secret. It is embedded in SharedSecret,
// GeneratedSecret and SecretMetadata.
type Metadata = api.Metadata

// SharedSecret is returned by ShareSecret.
type SharedSecret = api.SharedSecret

// GeneratedSecret is returned by GenerateSecret and carries the generated
// value.
type GeneratedSecret = api.GeneratedSecret

// SecretMetadata is returned by RetrieveMetadata.
type SecretMetadata = api.SecretMetadata

// Secret is returned by the RetrieveSecret family. The server deletes the
// secret when it answers: Value cannot be fetched a second time.
type Secret = api.Secret

// Status is returned by Client.Status.
type Status = api.Status

// SecretState is the lifecycle state reported in SecretMetadata.
type SecretState = api.SecretState

// Secret lifecycle states.
const (
	// StateNew means the secret has not been viewed.
	StateNew = api.StateNew
	// StateReceived means the secret has been viewed.
	StateReceived = api.StateReceived
)

// SystemStatus classifies the raw server status.
type SystemStatus = api.SystemStatus

// Server status classes.
const (
	// StatusNominal means the server is fully functional.
	StatusNominal = api.StatusNominal
	// StatusOffline means the server is offline.
	StatusOffline = api.StatusOffline
	// StatusUnknown is any other status string.
	StatusUnknown = api.StatusUnknown
)
