package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johngriebel/griddy-go/griddy"
)

func sampleGames() []griddy.Game {
	return []griddy.Game{
		{
			ID: "g1", Season: 2025, Week: 8,
			HomeTeam: "KC", AwayTeam: "PHI",
			HomeScore: 21, AwayScore: 17,
			Status: griddy.GameStatusFinal,
		},
		{
			ID: "g2", Season: 2025, Week: 8,
			HomeTeam: "DAL", AwayTeam: "NYG",
			HomeScore: 35, AwayScore: 10,
			Status: griddy.GameStatusFinal,
		},
		{
			ID: "g3", Season: 2025, Week: 9,
			HomeTeam: "BUF", AwayTeam: "MIA",
			Status:    griddy.GameStatusScheduled,
			StartTime: time.Now().Add(48 * time.Hour),
		},
	}
}

func TestCompileRejectsBadExpressions(t *testing.T) {
	compiler := NewCompiler()

	tests := []struct {
		name string
		expr string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"syntax error", "Week >=="},
		{"unknown field", "Quarterback == 'x'"},
		{"non-boolean result", "Week + 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compiler.Compile(tt.expr)
			require.Error(t, err)

			var compErr *CompilationError
			assert.ErrorAs(t, err, &compErr)
		})
	}
}

func TestFilterMatching(t *testing.T) {
	compiler := NewCompiler()
	games := sampleGames()

	tests := []struct {
		name    string
		expr    string
		wantIDs []string
	}{
		{"close final games", "Final && Margin <= 4", []string{"g1"}},
		{"team in either slot", `HomeTeam == "KC" || AwayTeam == "KC"`, []string{"g1"}},
		{"high scoring", "TotalPoints > 40", []string{"g2"}},
		{"by week", "Week == 9", []string{"g3"}},
		{"upcoming", "Upcoming", []string{"g3"}},
		{"no match", "Week == 1", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := compiler.Compile(tt.expr)
			require.NoError(t, err)

			matched, err := f.Apply(games)
			require.NoError(t, err)

			var ids []string
			for _, g := range matched {
				ids = append(ids, g.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCompilerCachesPrograms(t *testing.T) {
	compiler := NewCompiler()

	first, err := compiler.Compile("Week == 8")
	require.NoError(t, err)

	second, err := compiler.Compile("Week == 8")
	require.NoError(t, err)

	assert.Same(t, first, second, "identical expressions reuse the compiled program")
}

func TestProgramCacheEvictsOldest(t *testing.T) {
	cache := newProgramCache(2)

	a := &GameFilter{expression: "a"}
	b := &GameFilter{expression: "b"}
	c := &GameFilter{expression: "c"}

	cache.put("a", a)
	cache.put("b", b)
	cache.put("c", c)

	_, ok := cache.get("a")
	assert.False(t, ok, "oldest entry is evicted")

	got, ok := cache.get("c")
	assert.True(t, ok)
	assert.Same(t, c, got)
}
