package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// teamsCmd represents the teams command group
var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "Browse franchises and rosters",
}

var teamsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all franchises",
	RunE:  runTeamsList,
}

var teamsRosterCmd = &cobra.Command{
	Use:   "roster ABBR",
	Short: "Show a team's roster",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeamsRoster,
}

func init() {
	rootCmd.AddCommand(teamsCmd)
	teamsCmd.AddCommand(teamsListCmd)
	teamsCmd.AddCommand(teamsRosterCmd)
}

func runTeamsList(cmd *cobra.Command, args []string) error {
	teams, err := client.Teams().List(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("\n%d franchises:\n", len(teams))
	fmt.Println(strings.Repeat("-", 56))
	for _, team := range teams {
		fmt.Printf("%-5s %-24s %s %s\n", team.Abbr, team.City+" "+team.Name, team.Conference, team.Division)
	}

	return nil
}

func runTeamsRoster(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	abbr := strings.ToUpper(args[0])

	team, err := client.Teams().Get(ctx, abbr)
	if err != nil {
		return err
	}

	players, err := client.Teams().Roster(ctx, abbr)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s %s roster (%d players):\n", team.City, team.Name, len(players))
	fmt.Println(strings.Repeat("-", 48))
	for _, player := range players {
		fmt.Printf("#%-3d %-26s %-4s %s\n", player.Jersey, player.Name, player.Position, player.Status)
	}

	return nil
}
