package griddy

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/johngriebel/griddy-go/transport"
)

const listPageSize = 100

// GamesService groups the game schedule and score endpoints.
type GamesService struct {
	c *Client
}

// ListGamesOptions narrows a game listing. Zero-valued fields are omitted
// from the query.
type ListGamesOptions struct {
	Season int
	Week   int
	Team   string
	Phase  SeasonPhase
}

type gamesResponse struct {
	Games    []Game   `json:"games"`
	PageInfo PageInfo `json:"pageInfo"`
}

func (r *gamesResponse) normalize() {
	for i := range r.Games {
		r.Games[i].normalize()
	}
}

// List returns all games matching opts, following pagination until the
// last page.
func (s *GamesService) List(ctx context.Context, opts ListGamesOptions) ([]Game, error) {
	var all []Game
	page := 1

	for {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("pageSize", strconv.Itoa(listPageSize))
		if opts.Season > 0 {
			query.Set("season", strconv.Itoa(opts.Season))
		}
		if opts.Week > 0 {
			query.Set("week", strconv.Itoa(opts.Week))
		}
		if opts.Team != "" {
			query.Set("team", opts.Team)
		}
		if opts.Phase != "" {
			query.Set("phase", string(opts.Phase))
		}

		var resp gamesResponse
		err := s.c.do(ctx, &transport.RequestSpec{
			Method: http.MethodGet,
			Path:   "/v1/games",
			Query:  query,
		}, &resp)
		if err != nil {
			return nil, err
		}

		all = append(all, resp.Games...)

		s.c.logger.Debug().
			Int("page", page).
			Int("count", len(resp.Games)).
			Int("total", len(all)).
			Msg("Retrieved games page")

		if page >= resp.PageInfo.Pages || len(resp.Games) == 0 {
			break
		}
		page++
	}

	return all, nil
}

// Get returns a single game by ID.
func (s *GamesService) Get(ctx context.Context, id string) (*Game, error) {
	var game Game
	err := s.c.do(ctx, &transport.RequestSpec{
		Method:     http.MethodGet,
		Path:       "/v1/games/{id}",
		PathParams: map[string]string{"id": id},
	}, &game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

type standingsResponse struct {
	Standings []StandingsRow `json:"standings"`
}

// Standings returns the league standings for a season.
func (s *GamesService) Standings(ctx context.Context, season int) ([]StandingsRow, error) {
	query := url.Values{}
	query.Set("season", strconv.Itoa(season))

	var resp standingsResponse
	err := s.c.do(ctx, &transport.RequestSpec{
		Method: http.MethodGet,
		Path:   "/v1/standings",
		Query:  query,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Standings, nil
}

// Scoreboard fetches a week's games and the season standings concurrently
// and bundles them.
func (s *GamesService) Scoreboard(ctx context.Context, season, week int) (*Scoreboard, error) {
	board := &Scoreboard{Season: season, Week: week}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		games, err := s.List(ctx, ListGamesOptions{Season: season, Week: week})
		if err != nil {
			return err
		}
		board.Games = games
		return nil
	})
	g.Go(func() error {
		standings, err := s.Standings(ctx, season)
		if err != nil {
			return err
		}
		board.Standings = standings
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return board, nil
}
