package auth

import "context"

// TokenSource acquires fresh credentials from an external mechanism, such
// as manual token entry or a browser-automation login flow. Implementations
// live outside this module; the interface exists so callers can compose
// re-authentication on top of a Store without the client core knowing how
// tokens are obtained.
//
// The client never calls a TokenSource on its own. Automatic
// refresh-and-retry on an unauthorized response is deliberately not a core
// guarantee; wire a TokenSource into your own error handling instead:
//
//	creds, err := source.Token(ctx)
//	if err == nil {
//		store.Replace(creds)
//	}
type TokenSource interface {
	Token(ctx context.Context) (Credentials, error)
}
