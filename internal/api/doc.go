// Package api provides HTTP client functionality for communicating with the
// OneTimeSecret API. It handles authentication, form encoding of request
// parameters, JSON decoding of responses and translation of failed requests
// into structured errors.
//
// # Client Creation
//
// [NewClient] takes a [Config]. Only the base URL is required; when a
// username and API key are supplied, every request carries an
// Authorization: Basic header computed once at construction. Anonymous
// clients send no Authorization header.
//
// # Request Flow
//
// Every endpoint method follows the same sequence:
//
//  1. Optional fields are built into url.Values by [SharingParams.Values].
//  2. The request is executed with [Client.PostForm] or [Client.Get].
//  3. A 2xx body is decoded into the result type with [Decode].
//  4. A failure is passed through the error translator, which turns a
//     decodable {"message": "..."} body into an [apierrors.APIError] and
//     returns the original [apierrors.TransportError] otherwise.
//
// Requests are never retried.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
