package griddy

import (
	"context"
	"net/http"

	"github.com/johngriebel/griddy-go/transport"
)

// TeamsService groups the franchise endpoints.
type TeamsService struct {
	c *Client
}

type teamsResponse struct {
	Teams []Team `json:"teams"`
}

// List returns all franchises.
func (s *TeamsService) List(ctx context.Context) ([]Team, error) {
	var resp teamsResponse
	err := s.c.do(ctx, &transport.RequestSpec{
		Method: http.MethodGet,
		Path:   "/v1/teams",
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Teams, nil
}

// Get returns a franchise by abbreviation, such as "KC" or "PHI".
func (s *TeamsService) Get(ctx context.Context, abbr string) (*Team, error) {
	var team Team
	err := s.c.do(ctx, &transport.RequestSpec{
		Method:     http.MethodGet,
		Path:       "/v1/teams/{abbr}",
		PathParams: map[string]string{"abbr": abbr},
	}, &team)
	if err != nil {
		return nil, err
	}
	return &team, nil
}

type rosterResponse struct {
	Players []Player `json:"players"`
}

func (r *rosterResponse) normalize() {
	for i := range r.Players {
		r.Players[i].normalize()
	}
}

// Roster returns a team's current roster.
func (s *TeamsService) Roster(ctx context.Context, abbr string) ([]Player, error) {
	var resp rosterResponse
	err := s.c.do(ctx, &transport.RequestSpec{
		Method:     http.MethodGet,
		Path:       "/v1/teams/{abbr}/roster",
		PathParams: map[string]string{"abbr": abbr},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Players, nil
}
