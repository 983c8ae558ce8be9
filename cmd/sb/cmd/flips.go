package cmd

import (
	"skyblock-backend/cmd/sb/utils"
	"skyblock-backend/services/market"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

const katFlowerPrice = 575_000

// upgrade cost of a legendary -> mythic kat upgrade per pet, kat
// flowers included
var petUpgradeCosts = map[string]int64{
	"baby yeti":  14_000_000 + katFlowerPrice*12,
	"blue whale": 11_200_000 + katFlowerPrice*12,
	"jellyfish":  15_000_000 + katFlowerPrice*10,
	"tiger":      15_700_000 + katFlowerPrice*12,
	"griffin":    30_000_000,
	"lion":       15_000_000 + katFlowerPrice*12,
	"ocelot":     1_250_000 + katFlowerPrice*5,
	"enderman":   40_000_000 + katFlowerPrice*12,
	"blaze":      40_000_000 + katFlowerPrice*12,
}

var petFlipsCmd = &cobra.Command{
	Use:   "petflips",
	Short: "Price maxed legendary pets against their kat upgrade cost.",
	RunE: func(c *cobra.Command, args []string) error {
		auctions, err := client.FetchAllAuctions(c.Context())
		if err != nil {
			return err
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"Pet", "Cheapest Lvl 100", "Upgrade Cost", "Margin"})
		for _, flip := range market.PetFlips(petUpgradeCosts, auctions) {
			if flip.Cheapest == nil {
				t.AppendRow(table.Row{
					flip.Pet,
					"not found",
					utils.FormatCoins(flip.UpgradeCost),
					"-",
				})
				continue
			}
			t.AppendRow(table.Row{
				flip.Pet,
				utils.FormatCoins(flip.Cheapest.StartingBid),
				utils.FormatCoins(flip.UpgradeCost),
				utils.FormatCoins(flip.Margin),
			})
		}
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(petFlipsCmd)
}
