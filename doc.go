// Package onetimesecret provides a Go client for OneTimeSecret, a web
// service for sharing secrets that can be viewed only once.
//
// Basic usage:
//
//	client, err := onetimesecret.New(
//	    onetimesecret.WithCredentials("alice@example.com", "your-api-key"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Share a secret that expires in an hour
//	opts := onetimesecret.SharingOptions{}.WithPassphrase("hunter2").WithTTL(time.Hour)
//	shared, err := client.ShareSecret(ctx, "the launch code", opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Send this link:", client.SecretLink(shared.Metadata))
//
// # Errors
//
// A failed request whose body carries a server message is returned as an
// *APIError. Any other failed request, including network failures, is
// returned as a *TransportError. A successful response with an unexpected
// body is a *DecodeError. Use errors.Is with ErrNotFound, ErrUnauthorized or
// ErrRateLimited to test for common API errors.
//
// Requests are never retried.
package onetimesecret
