package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var statsSeason int

// statsCmd represents the stats command group
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Look up player and team statistics",
}

var statsPlayerCmd = &cobra.Command{
	Use:   "player PLAYER_ID",
	Short: "Show a player's season totals",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatsPlayer,
}

var statsLeadersCmd = &cobra.Command{
	Use:   "leaders CATEGORY",
	Short: "Show the leaderboard for a category (e.g. passYards, recTds)",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatsLeaders,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.AddCommand(statsPlayerCmd)
	statsCmd.AddCommand(statsLeadersCmd)

	statsCmd.PersistentFlags().IntVar(&statsSeason, "season", time.Now().Year(), "season year")
}

func runStatsPlayer(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	playerID := args[0]

	player, err := client.Players().Get(ctx, playerID)
	if err != nil {
		return err
	}

	stats, err := client.Stats().PlayerStats(ctx, playerID, statsSeason)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s (%s, %s) — %d season\n", player.Name, player.Position, player.Team, stats.Season)
	fmt.Println(strings.Repeat("-", 48))
	fmt.Printf("  Games:          %d\n", stats.GamesPlayed)
	if stats.PassYards > 0 || stats.PassTDs > 0 {
		fmt.Printf("  Passing:        %d yds, %d TD, %d INT\n", stats.PassYards, stats.PassTDs, stats.Interceptions)
	}
	if stats.RushYards > 0 || stats.RushTDs > 0 {
		fmt.Printf("  Rushing:        %d yds, %d TD\n", stats.RushYards, stats.RushTDs)
	}
	if stats.Receptions > 0 {
		fmt.Printf("  Receiving:      %d rec, %d yds, %d TD\n", stats.Receptions, stats.RecYards, stats.RecTDs)
	}

	return nil
}

func runStatsLeaders(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	category := args[0]

	leaders, err := client.Stats().Leaders(ctx, category, statsSeason)
	if err != nil {
		return err
	}

	if len(leaders) == 0 {
		fmt.Println("No leaders found for this category.")
		return nil
	}

	fmt.Printf("\n%s leaders, %d season:\n", category, statsSeason)
	fmt.Println(strings.Repeat("-", 56))
	for _, leader := range leaders {
		fmt.Printf("%-4d %-28s %-6s %10.0f\n",
			leader.Rank, leader.Player.Name, leader.Player.Team, leader.Value)
	}

	return nil
}
