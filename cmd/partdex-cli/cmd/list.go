package cmd

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"partdex/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list [target]",
	Short: "List components, optionally scoped to a category or family",
	Long: `List catalog components in ID order. With a category code or family
key only that group's members are listed.

Examples:
  partdex-cli list
  partdex-cli list AC
  partdex-cli list AC2xx`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := ""
		if len(args) > 0 {
			target = args[0]
		}
		ctx := context.Background()

		result, err := commands.NewListCommand(GetRepo(), GetRules(), target).Execute(ctx)
		if err != nil {
			return err
		}

		switch {
		case result.Family != nil:
			f := result.Family
			fmt.Printf("%s %s (%s%03d-%03d)\n", f.Key, f.Alias, f.Code, f.Start, f.End)
			if f.NextID != "" {
				fmt.Printf("Next free ID: %s\n", f.NextID)
			} else {
				fmt.Println("Range exhausted")
			}
			fmt.Println()
		case result.Category != nil:
			c := result.Category
			fmt.Printf("%s %s\n", c.Code, c.Title)
			if c.NextID != "" {
				fmt.Printf("Next free ID: %s\n", c.NextID)
			}
			fmt.Println()
		}

		if len(result.Components) == 0 {
			fmt.Println("No components")
			return nil
		}

		rows := make([]table.Row, 0, len(result.Components))
		for _, c := range result.Components {
			rows = append(rows, table.Row{c.ID, c.Name, c.Path})
		}
		fmt.Println(renderTable(table.Row{"ID", "Name", "Path"}, rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
