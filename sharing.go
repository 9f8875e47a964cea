package onetimesecret

import (
	"strconv"
	"time"

	"github.com/onetimesecret/client-go/internal/api"
)

// SharingOptions are the optional settings for sharing or generating a
// secret. The zero value sets nothing. SharingOptions is a value: every
// With/Without method returns a modified copy and leaves the receiver
// untouched.
//
//	opts := onetimesecret.SharingOptions{}.
//	    WithPassphrase("hunter2").
//	    WithTTL(24 * time.Hour)
//
// A field that is not set is left out of the request, so the server
// default applies. Values are not validated locally.
type SharingOptions struct {
	passphrase *string
	recipient  *string
	ttl        *string
}

// NewSharingOptions returns options with only the passphrase set.
func NewSharingOptions(passphrase string) SharingOptions {
	return SharingOptions{}.WithPassphrase(passphrase)
}

// WithPassphrase sets the passphrase the recipient must know to view the
// secret. The server also uses it to encrypt the secret.
func (o SharingOptions) WithPassphrase(passphrase string) SharingOptions {
	o.passphrase = &passphrase
	return o
}

// WithoutPassphrase clears the passphrase.
func (o SharingOptions) WithoutPassphrase() SharingOptions {
	o.passphrase = nil
	return o
}

// WithRecipient sets an e-mail address the server sends the secret link to.
func (o SharingOptions) WithRecipient(email string) SharingOptions {
	o.recipient = &email
	return o
}

// WithoutRecipient clears the recipient.
func (o SharingOptions) WithoutRecipient() SharingOptions {
	o.recipient = nil
	return o
}

// WithTTL sets how long the secret survives. Fractions of a second are
// dropped.
func (o SharingOptions) WithTTL(ttl time.Duration) SharingOptions {
	return o.WithTTLSeconds(int(ttl / time.Second))
}

// WithTTLSeconds sets how long the secret survives, in seconds.
func (o SharingOptions) WithTTLSeconds(seconds int) SharingOptions {
	return o.WithRawTTL(strconv.Itoa(seconds))
}

// WithRawTTL sets the ttl field to s verbatim.
func (o SharingOptions) WithRawTTL(s string) SharingOptions {
	o.ttl = &s
	return o
}

// WithoutTTL clears the time-to-live.
func (o SharingOptions) WithoutTTL() SharingOptions {
	o.ttl = nil
	return o
}

// Passphrase returns the passphrase and whether it is set.
func (o SharingOptions) Passphrase() (string, bool) {
	return deref(o.passphrase)
}

// Recipient returns the recipient and whether it is set.
func (o SharingOptions) Recipient() (string, bool) {
	return deref(o.recipient)
}

// TTL returns the ttl field as sent to the server and whether it is set.
func (o SharingOptions) TTL() (string, bool) {
	return deref(o.ttl)
}

func (o SharingOptions) params() api.SharingParams {
	return api.SharingParams{
		Passphrase: o.passphrase,
		TTL:        o.ttl,
		Recipient:  o.recipient,
	}
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}
