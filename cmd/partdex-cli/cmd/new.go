package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"partdex/internal/application/commands"
)

var newCmd = &cobra.Command{
	Use:   "new <target> <name>",
	Short: "Create a component page with the next free ID",
	Long: `Allocate the next free ID in a category or family and write a new
component page for it. The page starts from the front-matter template
and is meant to be filled in with the part's details.

Examples:
  partdex-cli new TS "DS18B20 probe"
  partdex-cli new AC2xx "4-channel relay board"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewCreateComponentCommand(GetRepo(), GetRules(), args[0], args[1]).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		fmt.Printf("Page: %s\n", GetRepo().AbsPath(result.Component.Path))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
