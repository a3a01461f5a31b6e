package commands

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(charactersCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Prints whether the server is open and how many players are online.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.ServerStatus(cmd.Context())
		if err != nil {
			return err
		}
		return render(os.Stdout, result, jsonOutput)
	},
}

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "Lists the characters on the configured API key.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.AccountCharacters(cmd.Context())
		if err != nil {
			return err
		}
		characters, ok := result.Get("characters")
		if !ok {
			characters = result
		}
		return render(os.Stdout, characters, jsonOutput)
	},
}
