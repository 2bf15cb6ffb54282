package auth

import "errors"

// Common errors returned by the credential store.
var (
	// ErrNotInitialized is returned when credentials are requested before
	// any have been set.
	ErrNotInitialized = errors.New("credentials not initialized")

	// ErrEmptyToken is returned when a replacement carries no access token.
	ErrEmptyToken = errors.New("access token is empty")
)
