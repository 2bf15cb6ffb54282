package griddy

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/johngriebel/griddy-go/auth"
	"github.com/johngriebel/griddy-go/retry"
	"github.com/johngriebel/griddy-go/transport"
)

const defaultUserAgent = "griddy-go"

// Client is the entry point to the API. Endpoints are grouped into
// namespaces (Games, Stats, Teams, Players) that share one invoker, one
// credential store, and one transport.
//
// A client moves through three states: constructed, active, closed. After
// Close, every call fails fast with a ClientClosed error instead of
// attempting network I/O.
type Client struct {
	invoker   *invoker
	transport *transport.HTTPTransport
	logger    zerolog.Logger
	timeout   time.Duration

	closed    atomic.Bool
	closeOnce sync.Once

	games   *GamesService
	stats   *StatsService
	teams   *TeamsService
	players *PlayersService
}

// New creates a client for the API at baseURL, reading credentials from
// store on every call. Defaults: 30s per-request timeout, the retry
// configuration from retry.DefaultConfig, a no-op logger.
func New(baseURL string, store *auth.Store, opts ...Option) (*Client, error) {
	o := &clientOptions{
		timeout:  30 * time.Second,
		retryCfg: retry.DefaultConfig(),
		clock:    retry.RealClock{},
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	tr := o.transport
	var owned *transport.HTTPTransport
	if tr == nil {
		userAgent := o.userAgent
		if userAgent == "" {
			userAgent = defaultUserAgent
		}
		httpTransport, err := transport.NewHTTPTransport(baseURL, o.httpClient, userAgent)
		if err != nil {
			return nil, err
		}
		tr = httpTransport
		owned = httpTransport
	}

	c := &Client{
		invoker: &invoker{
			transport: tr,
			store:     store,
			policy:    retry.NewPolicy(o.retryCfg),
			clock:     o.clock,
			logger:    o.logger,
		},
		transport: owned,
		logger:    o.logger,
		timeout:   o.timeout,
	}
	c.games = &GamesService{c: c}
	c.stats = &StatsService{c: c}
	c.teams = &TeamsService{c: c}
	c.players = &PlayersService{c: c}
	return c, nil
}

// Games returns the games namespace.
func (c *Client) Games() *GamesService { return c.games }

// Stats returns the stats namespace.
func (c *Client) Stats() *StatsService { return c.stats }

// Teams returns the teams namespace.
func (c *Client) Teams() *TeamsService { return c.teams }

// Players returns the players namespace.
func (c *Client) Players() *PlayersService { return c.players }

// Close releases transport resources. It is idempotent; the second and
// later calls do nothing and return no error.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		if c.transport != nil {
			c.transport.Close()
		}
		c.logger.Debug().Msg("Client closed")
	})
}

// do is the single path every namespace call goes through.
func (c *Client) do(ctx context.Context, spec *transport.RequestSpec, out any) error {
	if c.closed.Load() {
		return &APIError{Kind: KindClientClosed, Message: "client has been closed"}
	}
	if spec.Timeout <= 0 {
		spec.Timeout = c.timeout
	}
	return c.invoker.do(ctx, spec, out)
}
