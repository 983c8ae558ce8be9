package cmd

import (
	"fmt"
	"os"

	"skyblock-backend/lib/scrapers/hypixel"
	"skyblock-backend/lib/scrapers/mcuuid"

	"github.com/spf13/cobra"
)

type Config struct {
	ApiKey string `json:"api_key"`
}

var client *hypixel.Client
var resolver *mcuuid.Client
var profileFlag string

var rootCmd = &cobra.Command{
	Use:   "sb",
	Short: "sb is a CLI for the skyblock economy: auctions, bazaar and player stats.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&profileFlag, "profile", "", "profile id to query instead of the selected one")
}

func Execute(config Config) {
	var err error
	resolver, err = mcuuid.NewClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	client, err = hypixel.NewClient(config.ApiKey, resolver)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
