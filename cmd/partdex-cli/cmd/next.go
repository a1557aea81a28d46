package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"partdex/internal/application/commands"
)

var nextQuiet bool

var nextCmd = &cobra.Command{
	Use:   "next <target>",
	Short: "Show the next free ID in a category or family",
	Long: `Show the next free component ID in a category or family. Family
ranges are skipped when allocating from the surrounding category.

With --quiet only the bare ID is printed, for pasting into labels
and scripts.

Examples:
  partdex-cli next TS
  partdex-cli next AC2xx
  partdex-cli next AC2xx --quiet`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewNextIDCommand(GetRepo(), GetRules(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}

		if nextQuiet {
			fmt.Println(result.ID)
			return nil
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)
	nextCmd.Flags().BoolVarP(&nextQuiet, "quiet", "q", false, "print only the ID")
}
