// Package griddy provides a typed client for the Griddy NFL data API.
//
// # Architecture
//
// The client is layered so each concern lives in exactly one place:
//
//   - Client: the facade; owns the transport lifecycle and exposes grouped
//     endpoint namespaces (Games, Stats, Teams, Players)
//   - invoker: executes one logical call, injecting credentials,
//     classifying failures, and retrying transient ones per policy
//   - transport.Transport: one network attempt per Send, nothing more
//   - auth.Store: atomic in-memory credential storage
//   - retry.Policy: decides whether and how long to wait between attempts
//
// # Usage
//
//	store := auth.NewStore(auth.Credentials{AccessToken: "your-token"})
//	client, err := griddy.New("https://api.griddy.example", store,
//		griddy.WithTimeout(15*time.Second),
//		griddy.WithLogger(logger),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	games, err := client.Games().List(ctx, griddy.ListGamesOptions{
//		Season: 2025,
//		Week:   8,
//	})
//
// # Error Handling
//
// Every failure surfaces as *APIError, classified once at the invoker:
// unauthorized, not found, rate limited, server error, network error,
// validation error, client closed, cancelled, or credentials not
// initialized. Rate-limit errors preserve the server's Retry-After even
// after local retries are exhausted, so callers can apply their own
// backoff:
//
//	var apiErr *griddy.APIError
//	if errors.As(err, &apiErr) && apiErr.Kind == griddy.KindRateLimited {
//		time.Sleep(apiErr.RetryAfter)
//	}
//
// Unauthorized, not-found, and validation errors are never retried;
// retrying cannot fix them.
//
// # Concurrency
//
// A Client is safe for concurrent use. Calls share the credential store
// and connection pool but own their request and response lifecycles.
// Timeouts apply per attempt; bound the whole retried call with a context
// deadline. The client runs no background work: live-score polling and
// response caching are caller concerns layered on top.
package griddy
