package griddy

import (
	"context"
	"net/http"
	"net/url"

	"github.com/johngriebel/griddy-go/transport"
)

// PlayersService groups the player endpoints.
type PlayersService struct {
	c *Client
}

// Get returns a player by ID.
func (s *PlayersService) Get(ctx context.Context, id string) (*Player, error) {
	var player Player
	err := s.c.do(ctx, &transport.RequestSpec{
		Method:     http.MethodGet,
		Path:       "/v1/players/{id}",
		PathParams: map[string]string{"id": id},
	}, &player)
	if err != nil {
		return nil, err
	}
	return &player, nil
}

type playersResponse struct {
	Players []Player `json:"players"`
}

func (r *playersResponse) normalize() {
	for i := range r.Players {
		r.Players[i].normalize()
	}
}

// Search returns players whose name matches the query.
func (s *PlayersService) Search(ctx context.Context, query string) ([]Player, error) {
	params := url.Values{}
	params.Set("q", query)

	var resp playersResponse
	err := s.c.do(ctx, &transport.RequestSpec{
		Method: http.MethodGet,
		Path:   "/v1/players",
		Query:  params,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Players, nil
}
