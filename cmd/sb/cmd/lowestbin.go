package cmd

import (
	"fmt"

	"skyblock-backend/cmd/sb/utils"
	"skyblock-backend/services/market"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

const lowestBinLimit = 25

var lowestBinCmd = &cobra.Command{
	Use:   "lowestbin <name>",
	Short: "List the cheapest live buy-it-now listings matching a name.",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		auctions, err := client.FetchAllAuctions(c.Context())
		if err != nil {
			return err
		}

		matches := market.LowestBin(args[0], auctions)
		if len(matches) > lowestBinLimit {
			matches = matches[:lowestBinLimit]
		}
		if len(matches) == 0 {
			fmt.Println("No live listings found.")
			return nil
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"Name", "Price", "Rarity", "Auction"})
		for _, a := range matches {
			t.AppendRow(table.Row{
				a.Name,
				utils.FormatCoins(a.StartingBid),
				a.Rarity,
				a.AuctionID,
			})
		}
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lowestBinCmd)
}
