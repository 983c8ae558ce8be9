package cmd

import (
	"fmt"
	"sort"
	"strings"

	"skyblock-backend/cmd/sb/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var electionCmd = &cobra.Command{
	Use:   "election",
	Short: "Show the sitting mayor and the running election.",
	RunE: func(c *cobra.Command, args []string) error {
		result, err := client.FetchElection(c.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Mayor: %s (%s votes)\n", result.Current.Name, utils.FormatCoins(int64(result.Current.Votes)))
		for _, perk := range result.Current.Perks {
			fmt.Printf("  %s: %s\n", perk.Name, perk.Description)
		}

		if len(result.Next) > 0 {
			t := utils.NewTable()
			t.AppendHeader(table.Row{"Candidate", "Votes"})
			for _, mayor := range result.Next {
				t.AppendRow(table.Row{mayor.Name, utils.FormatCoins(int64(mayor.Votes))})
			}
			t.Render()
		}
		return nil
	},
}

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Show the news feed.",
	RunE: func(c *cobra.Command, args []string) error {
		items, err := client.FetchNews(c.Context())
		if err != nil {
			return err
		}
		for _, item := range items {
			fmt.Printf("%s %s\n  %s\n", item.Title, item.Text, item.Link)
		}
		return nil
	},
}

var bazaarCmd = &cobra.Command{
	Use:   "bazaar [product]",
	Short: "Show bazaar quick status, optionally filtered by product id.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		products, err := client.FetchBazaar(c.Context())
		if err != nil {
			return err
		}

		filter := ""
		if len(args) > 0 {
			filter = strings.ToUpper(args[0])
		}

		ids := make([]string, 0, len(products))
		for id := range products {
			if filter == "" || strings.Contains(id, filter) {
				ids = append(ids, id)
			}
		}
		sort.Strings(ids)

		t := utils.NewTable()
		t.AppendHeader(table.Row{"Product", "Buy", "Sell", "Buy Volume", "Sell Volume"})
		for _, id := range ids {
			p := products[id]
			t.AppendRow(table.Row{
				id,
				fmt.Sprintf("%.1f", p.BuyPrice),
				fmt.Sprintf("%.1f", p.SellPrice),
				utils.FormatCoins(p.BuyVolume),
				utils.FormatCoins(p.SellVolume),
			})
		}
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(electionCmd)
	rootCmd.AddCommand(newsCmd)
	rootCmd.AddCommand(bazaarCmd)
}
