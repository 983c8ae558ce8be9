package cmd

import (
	"fmt"

	"skyblock-backend/cmd/sb/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var auctionsCmd = &cobra.Command{
	Use:   "auctions <player>",
	Short: "List a player's unclaimed auctions.",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		auctions, err := client.FetchAuctions(c.Context(), args[0], profileFlag)
		if err != nil {
			return err
		}
		if len(auctions) == 0 {
			fmt.Println("No unclaimed auctions.")
			return nil
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"Name", "Starting Bid", "Highest Bid", "Bids", "Alive", "Ends"})
		for i := range auctions {
			a := &auctions[i]
			t.AppendRow(table.Row{
				a.Name,
				utils.FormatCoins(a.StartingBid),
				utils.FormatCoins(a.HighestBid),
				len(a.Bids),
				a.IsAlive(),
				a.ExpiresAt.Format("2006-01-02 15:04"),
			})
		}
		t.Render()
		return nil
	},
}

var inventoryCmd = &cobra.Command{
	Use:   "inventory <player>",
	Short: "Show a player's inventory grid.",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		rows, err := client.FetchInventory(c.Context(), args[0], profileFlag)
		if err != nil {
			return err
		}

		t := utils.NewTable()
		for _, row := range rows {
			cells := make(table.Row, len(row))
			for i := range row {
				if row[i].IsEmpty() {
					cells[i] = ""
					continue
				}
				cells[i] = fmt.Sprintf("%s x%d", row[i].Name, row[i].Count())
			}
			t.AppendRow(cells)
		}
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(auctionsCmd)
	rootCmd.AddCommand(inventoryCmd)
}
