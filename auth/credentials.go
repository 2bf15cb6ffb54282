package auth

import "time"

// Credentials holds a bearer access token along with optional refresh
// metadata. The zero value is not usable; seed a Store with NewStore or
// Store.Replace before issuing API calls.
type Credentials struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Expired reports whether the credentials carry an expiry that has passed.
// Credentials without an expiry never expire.
func (c Credentials) Expired(now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(c.ExpiresAt)
}

// HasRefreshToken reports whether a refresh token is available for an
// external re-authentication flow.
func (c Credentials) HasRefreshToken() bool {
	return c.RefreshToken != ""
}
