package auth

import "sync"

// Store holds the current Credentials for a client. It is safe for
// concurrent use: readers never observe a partially written value, and
// Replace is atomic with respect to Get.
//
// The store keeps credentials in memory only. Persisting tokens across
// process restarts is the caller's responsibility.
type Store struct {
	mu    sync.RWMutex
	creds Credentials
	set   bool
}

// NewStore creates a store seeded with the given credentials.
func NewStore(creds Credentials) *Store {
	return &Store{creds: creds, set: creds.AccessToken != ""}
}

// NewEmptyStore creates a store with no credentials. Get returns
// ErrNotInitialized until Replace is called.
func NewEmptyStore() *Store {
	return &Store{}
}

// Get returns the current credentials. It fails with ErrNotInitialized if
// no credentials have been set.
func (s *Store) Get() (Credentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set {
		return Credentials{}, ErrNotInitialized
	}
	return s.creds, nil
}

// Replace atomically swaps in new credentials. The access token must be
// non-empty.
func (s *Store) Replace(creds Credentials) error {
	if creds.AccessToken == "" {
		return ErrEmptyToken
	}
	s.mu.Lock()
	s.creds = creds
	s.set = true
	s.mu.Unlock()
	return nil
}
