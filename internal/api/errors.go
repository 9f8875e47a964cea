package api

import (
	"errors"

	"github.com/onetimesecret/client-go/internal/apierrors"
)

// decodeErrorMessage decodes the body of a failed request. It fails for an
// empty body, malformed JSON, a JSON null or anything that is not an object.
func decodeErrorMessage(body []byte) (*ErrorMessage, error) {
	if len(body) == 0 {
		return nil, errors.New("empty body")
	}
	msg, err := Decode[*ErrorMessage](body)
	if err != nil {
		return nil, err
	}
	if *msg == nil {
		return nil, errors.New("null body")
	}
	return *msg, nil
}

// translateError converts a transport failure into an *apierrors.APIError
// when its body carries a structured error message. In every other case the
// original error is returned unchanged.
func translateError(err error) error {
	var transportErr *apierrors.TransportError
	if !errors.As(err, &transportErr) || transportErr.StatusCode == 0 {
		return err
	}

	msg, decodeErr := decodeErrorMessage(transportErr.Body)
	if decodeErr != nil {
		return err
	}

	return &apierrors.APIError{
		StatusCode: transportErr.StatusCode,
		Message:    msg.Message,
		Err:        transportErr,
	}
}
