package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/johngriebel/griddy-go/filter"
	"github.com/johngriebel/griddy-go/griddy"
)

var (
	season        int
	week          int
	teamAbbr      string
	filterExpr    string
	watchInterval time.Duration
)

// gamesCmd represents the games command group
var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "Browse game schedules and scores",
}

var gamesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List games for a season and week",
	RunE:  runGamesList,
}

var gamesWatchCmd = &cobra.Command{
	Use:   "watch GAME_ID",
	Short: "Poll a live game for score updates",
	Long: `Repeatedly fetch a game and print the score whenever it changes.
Polling stops when the game goes final or the command is interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runGamesWatch,
}

func init() {
	rootCmd.AddCommand(gamesCmd)
	gamesCmd.AddCommand(gamesListCmd)
	gamesCmd.AddCommand(gamesWatchCmd)

	gamesListCmd.Flags().IntVar(&season, "season", time.Now().Year(), "season year")
	gamesListCmd.Flags().IntVar(&week, "week", 0, "week number (all weeks if omitted)")
	gamesListCmd.Flags().StringVar(&teamAbbr, "team", "", "limit to one team's games")
	gamesListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression, e.g. 'Final && Margin <= 3'")

	gamesWatchCmd.Flags().DurationVar(&watchInterval, "interval", 30*time.Second, "polling interval")
}

func runGamesList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	games, err := client.Games().List(ctx, griddy.ListGamesOptions{
		Season: season,
		Week:   week,
		Team:   teamAbbr,
	})
	if err != nil {
		return err
	}

	if filterExpr != "" {
		compiled, err := filter.NewCompiler().Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		games, err = compiled.Apply(games)
		if err != nil {
			return err
		}
	}

	if len(games) == 0 {
		fmt.Println("No games found.")
		return nil
	}

	fmt.Printf("\nFound %d games:\n", len(games))
	fmt.Println(strings.Repeat("-", 72))
	for _, game := range games {
		printGameLine(game)
	}

	return nil
}

func printGameLine(game griddy.Game) {
	switch game.Status {
	case griddy.GameStatusScheduled:
		fmt.Printf("• Week %-2d  %s @ %s  %s\n",
			game.Week, game.AwayTeam, game.HomeTeam,
			game.StartTime.Format("Mon Jan 2 15:04"))
	case griddy.GameStatusInProgress:
		fmt.Printf("• Week %-2d  %s %d @ %s %d  [%s %s]\n",
			game.Week, game.AwayTeam, game.AwayScore,
			game.HomeTeam, game.HomeScore, game.Quarter, game.Clock)
	default:
		fmt.Printf("• Week %-2d  %s %d @ %s %d  [%s]\n",
			game.Week, game.AwayTeam, game.AwayScore,
			game.HomeTeam, game.HomeScore, strings.ToUpper(string(game.Status)))
	}
}

// runGamesWatch drives the polling loop. The client owns no scheduler;
// periodic re-fetching is the caller's loop around one-shot calls.
func runGamesWatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	gameID := args[0]

	logger.Info().
		Str("game_id", gameID).
		Dur("interval", watchInterval).
		Msg("Watching game")

	var lastHome, lastAway = -1, -1

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		game, err := client.Games().Get(ctx, gameID)
		if err != nil {
			if griddy.IsRateLimited(err) {
				logger.Warn().Err(err).Msg("Rate limited, backing off until next tick")
			} else {
				return err
			}
		} else {
			if game.HomeScore != lastHome || game.AwayScore != lastAway {
				printGameLine(*game)
				lastHome, lastAway = game.HomeScore, game.AwayScore
			}
			if game.Status == griddy.GameStatusFinal {
				fmt.Println("Game is final.")
				return nil
			}
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil
		}
	}
}
