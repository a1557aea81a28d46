package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"partdex/internal/application/commands"
	"partdex/internal/registry"
)

var pageCmd = &cobra.Command{
	Use:   "page [snapshot]",
	Short: "Render the registry page to stdout",
	Long: `Render the registry summary page to stdout without writing any
files. By default the catalog is scanned fresh; pass a snapshot file to
render a previously written registry instead. Warnings and errors show
up in the page's notice block, and errors additionally make the exit
code non-zero.

Examples:
  partdex-cli page
  partdex-cli page docs/components/stickers/id_registry_simple.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			snap, err := registry.LoadSnapshot(args[0])
			if err != nil {
				return err
			}
			fmt.Print(registry.RenderPage(snap, registry.PageOptions{}))
			if len(snap.Errors) > 0 {
				os.Exit(1)
			}
			return nil
		}

		result, err := commands.NewBuildCommand(GetRepo(), GetRules(), false).Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Print(registry.RenderPage(registry.BuildSnapshot(result), registry.PageOptions{}))

		if result.HasErrors() {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pageCmd)
}
