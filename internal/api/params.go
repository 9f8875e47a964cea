package api

import (
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// SharingParams are the optional form fields accepted by /share, /generate
// and /secret/{key}. A nil field is left out of the request; a non-nil
// field is sent even when it points to an empty string. Values are not
// validated here.
type SharingParams struct {
	Passphrase *string `url:"passphrase,omitempty"`
	TTL        *string `url:"ttl,omitempty"`
	Recipient  *string `url:"recipient,omitempty"`
}

// Values returns the form fields for p.
func (p SharingParams) Values() (url.Values, error) {
	v, err := query.Values(p)
	if err != nil {
		return nil, fmt.Errorf("encode sharing params: %w", err)
	}
	return v, nil
}
