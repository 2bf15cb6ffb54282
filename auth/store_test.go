package auth

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreGetBeforeReplace(t *testing.T) {
	store := NewEmptyStore()

	_, err := store.Get()
	require.ErrorIs(t, err, ErrNotInitialized)
}

func TestStoreReplaceAndGet(t *testing.T) {
	store := NewEmptyStore()

	creds := Credentials{
		AccessToken:  "token-1",
		RefreshToken: "refresh-1",
		ExpiresAt:    time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Replace(creds))

	got, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, creds, got)
}

func TestStoreReplaceEmptyToken(t *testing.T) {
	store := NewEmptyStore()

	err := store.Replace(Credentials{})
	require.ErrorIs(t, err, ErrEmptyToken)

	_, err = store.Get()
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestNewStoreSeeded(t *testing.T) {
	store := NewStore(Credentials{AccessToken: "seeded"})

	got, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, "seeded", got.AccessToken)
}

// Concurrent readers must never observe a torn value: every Get returns one
// of the complete credential sets that was actually written.
func TestStoreConcurrentGetReplace(t *testing.T) {
	store := NewStore(Credentials{AccessToken: "a", RefreshToken: "ra"})

	valid := map[string]string{
		"a": "ra",
		"b": "rb",
	}

	stop := make(chan struct{})
	writerDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			if i%2 == 0 {
				store.Replace(Credentials{AccessToken: "b", RefreshToken: "rb"})
			} else {
				store.Replace(Credentials{AccessToken: "a", RefreshToken: "ra"})
			}
		}
	}()

	var wg sync.WaitGroup
	for reader := 0; reader < 8; reader++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				creds, err := store.Get()
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				want, ok := valid[creds.AccessToken]
				if !ok || creds.RefreshToken != want {
					t.Errorf("torn credentials observed: %+v", creds)
					return
				}
			}
		}()
	}

	wg.Wait()
	close(stop)
	<-writerDone
}

func TestCredentialsExpired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		creds   Credentials
		expired bool
	}{
		{
			name:    "no expiry never expires",
			creds:   Credentials{AccessToken: "t"},
			expired: false,
		},
		{
			name:    "future expiry",
			creds:   Credentials{AccessToken: "t", ExpiresAt: now.Add(time.Minute)},
			expired: false,
		},
		{
			name:    "past expiry",
			creds:   Credentials{AccessToken: "t", ExpiresAt: now.Add(-time.Minute)},
			expired: true,
		},
		{
			name:    "exact expiry counts as expired",
			creds:   Credentials{AccessToken: "t", ExpiresAt: now},
			expired: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, tt.creds.Expired(now))
		})
	}
}
