package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"partdex/internal/adapters/sqlite"
	"partdex/internal/application/commands"
	"partdex/internal/domain"
)

var (
	syncFull bool
	refsOut  bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Update the search index",
	Long: `Keep the SQLite search index in step with the catalog. Only pages
that changed since the last sync are re-read; --full rebuilds the
index from scratch.

The index backs the refs command and the MCP server's queries. It
lives under the user cache directory, keyed by catalog root.

Examples:
  partdex-cli sync
  partdex-cli sync --full`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		idx := sqlite.NewIndex()
		if err := idx.Open(GetConfig().DocsPath()); err != nil {
			return err
		}
		defer idx.Close()

		result, err := commands.NewSyncCommand(idx, syncFull).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var refsCmd = &cobra.Command{
	Use:   "refs <id|path>",
	Short: "List pages that link to a component",
	Long: `List the pages whose wiki-links point at a component, using the
search index. The argument is a component ID or a page path relative
to the catalog root. With --out the direction flips: show which
components the page itself links to. Run sync first if the index is
stale.

Examples:
  partdex-cli refs TS101
  partdex-cli refs audio/preamps/ts101.md
  partdex-cli refs TS101 --out`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx := sqlite.NewIndex()
		if err := idx.Open(GetConfig().DocsPath()); err != nil {
			return err
		}
		defer idx.Close()

		entry, err := refTarget(idx, args[0])
		if err != nil {
			return err
		}
		if entry == nil {
			return fmt.Errorf("not in the index: %s (run sync)", args[0])
		}

		if refsOut {
			return printOutgoingRefs(idx, entry)
		}
		return printIncomingRefs(idx, entry)
	},
}

// refTarget resolves the argument to an index entry. Anything that parses
// as a component ID is looked up by ID, everything else is treated as a
// page path relative to the catalog root.
func refTarget(idx *sqlite.Index, arg string) (*domain.IndexEntry, error) {
	if parsed, err := domain.ParseID(arg); err == nil {
		return idx.Lookup(parsed.String())
	}
	return idx.LookupPath(filepath.ToSlash(filepath.Clean(arg)))
}

func printIncomingRefs(idx *sqlite.Index, entry *domain.IndexEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("page has no component ID: %s", entry.Path)
	}

	refs, err := idx.ReferencesTo(entry.ID)
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		fmt.Println("No references")
		return nil
	}
	for _, r := range refs {
		fmt.Printf("%s  %s\n", r.SourcePath, r.Context)
	}
	return nil
}

func printOutgoingRefs(idx *sqlite.Index, entry *domain.IndexEntry) error {
	refs, err := idx.ReferencesFrom(entry.Path)
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		fmt.Println("No references")
		return nil
	}
	for _, r := range refs {
		fmt.Printf("%s  %s\n", r.TargetID, r.Context)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(refsCmd)
	syncCmd.Flags().BoolVar(&syncFull, "full", false, "rebuild the index from scratch")
	refsCmd.Flags().BoolVar(&refsOut, "out", false, "list the page's outgoing links instead")
}
