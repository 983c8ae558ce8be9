package cmd

import (
	"fmt"
	"strings"
	"time"

	"skyblock-backend/cmd/sb/utils"
	"skyblock-backend/lib/scrapers/hypixel"
	"skyblock-backend/services/skyblock"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var cataCmd = &cobra.Command{
	Use:   "cata <player>",
	Short: "Show a player's catacombs progression.",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		stats, err := client.FetchCataStats(c.Context(), args[0], profileFlag)
		if err != nil {
			return err
		}

		fmt.Printf(
			"%s %s ||cata %d|| %.2f%% to %d\n",
			stats.Rank, stats.DisplayName,
			stats.Level.CurrentLevel, stats.Level.PercentToNewLevel, stats.Level.CurrentLevel+1,
		)
		fmt.Println("Selected Class:", capitalize(stats.SelectedClass))

		classes := utils.NewTable()
		classes.AppendHeader(table.Row{"Class", "Level"})
		for class, exp := range stats.ClassExperience {
			classes.AppendRow(table.Row{class, skyblock.CatacombsLevel(exp).CurrentLevel})
		}
		classes.Render()

		totalRuns := 0.0
		for _, variant := range []hypixel.DungeonStats{stats.Catacombs, stats.MasterCatacombs} {
			for _, n := range variant.TierCompletions {
				totalRuns += n
			}
		}
		if totalRuns > 0 {
			fmt.Printf(
				"Secrets Found: %s (%.2f per run)\n",
				utils.FormatCoins(int64(stats.Secrets)),
				float64(stats.Secrets)/totalRuns,
			)
		}

		times := utils.NewTable()
		times.AppendHeader(table.Row{"Floor", "Fastest S+", "Master Fastest S+"})
		for floor := 5; floor <= 7; floor++ {
			key := fmt.Sprintf("%d", floor)
			times.AppendRow(table.Row{
				key,
				formatRunTime(stats.Catacombs.FastestTimes[key]),
				formatRunTime(stats.MasterCatacombs.FastestTimes[key]),
			})
		}
		times.Render()
		return nil
	},
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func formatRunTime(millis float64) string {
	if millis == 0 {
		return "-"
	}
	d := time.Duration(millis) * time.Millisecond
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func init() {
	rootCmd.AddCommand(cataCmd)
}
