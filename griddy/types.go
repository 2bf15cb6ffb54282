package griddy

import "time"

// GameStatus represents the lifecycle state of a game.
type GameStatus string

const (
	GameStatusScheduled  GameStatus = "scheduled"
	GameStatusInProgress GameStatus = "in_progress"
	GameStatusFinal      GameStatus = "final"
	GameStatusPostponed  GameStatus = "postponed"
)

// SeasonPhase identifies the portion of the season a game belongs to.
type SeasonPhase string

const (
	PhasePreseason  SeasonPhase = "PRE"
	PhaseRegular    SeasonPhase = "REG"
	PhasePostseason SeasonPhase = "POST"
)

// Game is a single scheduled, live, or completed game.
type Game struct {
	ID        string      `json:"id"`
	Season    int         `json:"season"`
	Week      int         `json:"week"`
	Phase     SeasonPhase `json:"phase"`
	HomeTeam  string      `json:"homeTeam"`
	AwayTeam  string      `json:"awayTeam"`
	HomeScore int         `json:"homeScore"`
	AwayScore int         `json:"awayScore"`
	Status    GameStatus  `json:"status"`
	Quarter   string      `json:"quarter"`
	Clock     string      `json:"clock"`
	StartTime time.Time   `json:"startTime"`
	Venue     string      `json:"venue"`
}

// normalize fills optional fields with their defined defaults. Parsed
// values are defaulted once here rather than checked defensively at every
// read site.
func (g *Game) normalize() {
	if g.Status == "" {
		g.Status = GameStatusScheduled
	}
	if g.Phase == "" {
		g.Phase = PhaseRegular
	}
}

// Team is a franchise.
type Team struct {
	Abbr       string `json:"abbr"`
	Name       string `json:"name"`
	City       string `json:"city"`
	Conference string `json:"conference"`
	Division   string `json:"division"`
}

// Player is a rostered player.
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Team     string `json:"team"`
	Jersey   int    `json:"jersey"`
	Status   string `json:"status"`
}

func (p *Player) normalize() {
	if p.Status == "" {
		p.Status = "active"
	}
}

// PlayerSeasonStats aggregates a player's totals for one season.
type PlayerSeasonStats struct {
	PlayerID      string `json:"playerId"`
	Season        int    `json:"season"`
	GamesPlayed   int    `json:"gamesPlayed"`
	PassYards     int    `json:"passYards"`
	PassTDs       int    `json:"passTds"`
	Interceptions int    `json:"interceptions"`
	RushYards     int    `json:"rushYards"`
	RushTDs       int    `json:"rushTds"`
	Receptions    int    `json:"receptions"`
	RecYards      int    `json:"recYards"`
	RecTDs        int    `json:"recTds"`
}

// TeamSeasonStats aggregates a team's totals for one season.
type TeamSeasonStats struct {
	Team          string  `json:"team"`
	Season        int     `json:"season"`
	PointsFor     int     `json:"pointsFor"`
	PointsAgainst int     `json:"pointsAgainst"`
	TotalYards    int     `json:"totalYards"`
	Turnovers     int     `json:"turnovers"`
	ThirdDownPct  float64 `json:"thirdDownPct"`
}

// StatLeader is one row of a statistical leaderboard.
type StatLeader struct {
	Rank   int     `json:"rank"`
	Player Player  `json:"player"`
	Value  float64 `json:"value"`
}

// StandingsRow is one team's position in the standings.
type StandingsRow struct {
	Team   string  `json:"team"`
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
	Ties   int     `json:"ties"`
	WinPct float64 `json:"winPct"`
}

// Scoreboard bundles a week's games with the current standings.
type Scoreboard struct {
	Season    int
	Week      int
	Games     []Game
	Standings []StandingsRow
}

// PageInfo describes pagination state in list responses.
type PageInfo struct {
	Page    int `json:"page"`
	Pages   int `json:"pages"`
	Results int `json:"results"`
}
