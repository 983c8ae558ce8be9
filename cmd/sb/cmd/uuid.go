package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var uuidCmd = &cobra.Command{
	Use:   "uuid <name-or-uuid>",
	Short: "Resolve a player name to its uuid, or the other way around.",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		if _, err := uuid.Parse(args[0]); err == nil {
			name, err := resolver.NameFromUUID(c.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(name)
			return nil
		}

		id, err := resolver.UUIDFromName(c.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uuidCmd)
}
