// Package filter compiles expr-language expressions into predicates over
// games, for narrowing CLI listings. Expressions see the game's fields plus
// a few derived values:
//
//	Final && Margin <= 3
//	HomeTeam == "KC" || AwayTeam == "KC"
//	TotalPoints > 50 && Week >= 10
package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/johngriebel/griddy-go/griddy"
)

const defaultCacheSize = 64

// GameFilter is a compiled predicate over a single game.
type GameFilter struct {
	expression string
	program    *vm.Program
}

// Compiler turns filter expressions into GameFilters, caching compiled
// programs. The zero value is not usable; call NewCompiler.
type Compiler struct {
	cache *programCache
}

// NewCompiler creates a compiler with an LRU program cache.
func NewCompiler() *Compiler {
	return &Compiler{cache: newProgramCache(defaultCacheSize)}
}

// Compile compiles expression into a GameFilter.
func (c *Compiler) Compile(expression string) (*GameFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	if cached, ok := c.cache.get(expression); ok {
		return cached, nil
	}

	program, err := expr.Compile(expression,
		expr.Env(gameEnv(griddy.Game{}, time.Now())),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Reason: err.Error()}
	}

	f := &GameFilter{expression: expression, program: program}
	c.cache.put(expression, f)
	return f, nil
}

// Match reports whether the game satisfies the filter.
func (f *GameFilter) Match(game griddy.Game) (bool, error) {
	result, err := expr.Run(f.program, gameEnv(game, time.Now()))
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, Reason: err.Error()}
	}
	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{Expression: f.expression, Reason: "expression did not evaluate to a boolean"}
	}
	return matched, nil
}

// Apply returns the games that satisfy the filter.
func (f *GameFilter) Apply(games []griddy.Game) ([]griddy.Game, error) {
	var matched []griddy.Game
	for _, game := range games {
		ok, err := f.Match(game)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, game)
		}
	}
	return matched, nil
}

// gameEnv builds the evaluation environment for one game.
func gameEnv(game griddy.Game, now time.Time) map[string]any {
	margin := game.HomeScore - game.AwayScore
	if margin < 0 {
		margin = -margin
	}

	return map[string]any{
		"ID":          game.ID,
		"Season":      game.Season,
		"Week":        game.Week,
		"Phase":       string(game.Phase),
		"HomeTeam":    game.HomeTeam,
		"AwayTeam":    game.AwayTeam,
		"HomeScore":   game.HomeScore,
		"AwayScore":   game.AwayScore,
		"Status":      string(game.Status),
		"Venue":       game.Venue,
		"StartTime":   game.StartTime,
		"Margin":      margin,
		"TotalPoints": game.HomeScore + game.AwayScore,
		"Final":       game.Status == griddy.GameStatusFinal,
		"Live":        game.Status == griddy.GameStatusInProgress,
		"Upcoming":    game.Status == griddy.GameStatusScheduled && game.StartTime.After(now),
		"daysAgo": func(n int) time.Time {
			return now.AddDate(0, 0, -n)
		},
	}
}
