package griddy

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/johngriebel/griddy-go/transport"
)

// StatsService groups the statistics endpoints.
type StatsService struct {
	c *Client
}

// PlayerStats returns a player's season totals.
func (s *StatsService) PlayerStats(ctx context.Context, playerID string, season int) (*PlayerSeasonStats, error) {
	query := url.Values{}
	query.Set("season", strconv.Itoa(season))

	var stats PlayerSeasonStats
	err := s.c.do(ctx, &transport.RequestSpec{
		Method:     http.MethodGet,
		Path:       "/v1/stats/players/{id}",
		PathParams: map[string]string{"id": playerID},
		Query:      query,
	}, &stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// TeamStats returns a team's season totals.
func (s *StatsService) TeamStats(ctx context.Context, team string, season int) (*TeamSeasonStats, error) {
	query := url.Values{}
	query.Set("season", strconv.Itoa(season))

	var stats TeamSeasonStats
	err := s.c.do(ctx, &transport.RequestSpec{
		Method:     http.MethodGet,
		Path:       "/v1/stats/teams/{team}",
		PathParams: map[string]string{"team": team},
		Query:      query,
	}, &stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

type leadersResponse struct {
	Leaders []StatLeader `json:"leaders"`
}

func (r *leadersResponse) normalize() {
	for i := range r.Leaders {
		r.Leaders[i].Player.normalize()
	}
}

// Leaders returns the leaderboard for a statistical category, such as
// "passYards" or "recTds".
func (s *StatsService) Leaders(ctx context.Context, category string, season int) ([]StatLeader, error) {
	query := url.Values{}
	query.Set("season", strconv.Itoa(season))

	var resp leadersResponse
	err := s.c.do(ctx, &transport.RequestSpec{
		Method:     http.MethodGet,
		Path:       "/v1/stats/leaders/{category}",
		PathParams: map[string]string{"category": category},
		Query:      query,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Leaders, nil
}
