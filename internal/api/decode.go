package api

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/onetimesecret/client-go/internal/apierrors"
)

// Decode unmarshals a response body into a new T. Missing fields keep their
// zero value and unknown fields are ignored. A body that is not valid JSON
// or does not fit T yields an *apierrors.DecodeError.
func Decode[T any](data []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, &apierrors.DecodeError{Target: fmt.Sprintf("%T", v), Err: err}
	}
	return &v, nil
}
