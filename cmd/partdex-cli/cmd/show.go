package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"partdex/internal/application/commands"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a component page",
	Long: `Print the raw Markdown page of one component.

Example:
  partdex-cli show TS101`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewShowCommand(GetRepo(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Print(result.Content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
