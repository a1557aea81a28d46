package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"partdex/internal/application/commands"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog",
	Long: `Search component pages by ID, name, or content.

Results are ranked by relevance: exact ID matches first, then name
matches, then body matches.

Examples:
  partdex-cli search bme280
  partdex-cli search TS1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		results, err := commands.NewSearchCommand(GetRepo(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("No results found")
			return nil
		}
		if searchLimit > 0 && len(results) > searchLimit {
			results = results[:searchLimit]
		}

		rows := make([]table.Row, 0, len(results))
		for _, r := range results {
			rows = append(rows, table.Row{r.ID, r.Name, snippet(r.MatchedText, 60)})
		}
		fmt.Println(renderTable(table.Row{"ID", "Name", "Match"}, rows))
		return nil
	},
}

// snippet collapses whitespace and truncates raw page text for a table cell.
func snippet(raw string, max int) string {
	s := strings.Join(strings.Fields(raw), " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "maximum results to show (0 for all)")
	rootCmd.AddCommand(searchCmd)
}
