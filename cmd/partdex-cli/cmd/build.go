package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"partdex/internal/application"
	"partdex/internal/application/commands"
	"partdex/internal/registry"
)

var buildStrict bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Scan the catalog and write the registry page and snapshots",
	Long: `Scan every component page, aggregate the registry, and write the
snapshot files and the rendered registry page.

Warnings never block a build. Errors are written into the page notices
and reported on stderr; the exit code is non-zero whenever the run
produced errors. With --strict any error aborts the build before
outputs are written.

Examples:
  partdex-cli build
  partdex-cli build --strict`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewBuildCommand(GetRepo(), GetRules(), buildStrict).Execute(ctx)
		if result == nil {
			return err
		}

		reportIssues(result)

		var buildErr *application.BuildError
		if errors.As(err, &buildErr) {
			fmt.Fprintf(os.Stderr, "build aborted: %d errors\n", len(buildErr.Errors))
			os.Exit(1)
		}
		if err != nil {
			return err
		}

		_, simplePath, err := registry.WriteSnapshots(GetConfig().RegistryPath(), result)
		if err != nil {
			return err
		}

		source, relErr := filepath.Rel(GetConfig().DocsPath(), simplePath)
		if relErr != nil {
			source = simplePath
		}

		pagePath := GetConfig().PageFilePath()
		page := registry.RenderPage(registry.BuildSnapshot(result), registry.PageOptions{Source: source})
		if err := os.MkdirAll(filepath.Dir(pagePath), 0o755); err != nil {
			return fmt.Errorf("failed to create page directory: %w", err)
		}
		if err := os.WriteFile(pagePath, []byte(page), 0o644); err != nil {
			return fmt.Errorf("failed to write registry page: %w", err)
		}

		fmt.Printf("Indexed %d components in %d categories\n", len(result.Components), len(result.Categories))
		fmt.Printf("Registry page: %s\n", pagePath)

		if result.HasErrors() {
			os.Exit(1)
		}
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Scan the catalog and report problems without writing anything",
	Long: `Scan every component page and report malformed IDs, duplicates,
unknown categories, and exhausted ranges. Nothing is written.

The exit code is non-zero whenever the catalog has errors, so check
works as a pre-commit or CI gate.

Example:
  partdex-cli check`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewBuildCommand(GetRepo(), GetRules(), false).Execute(ctx)
		if err != nil {
			return err
		}

		reportIssues(result)

		fmt.Printf("%d components, %d warnings, %d errors\n",
			len(result.Components), len(result.Warnings), len(result.Errors))

		if result.HasErrors() {
			os.Exit(1)
		}
		return nil
	},
}

func reportIssues(result *registry.Result) {
	for _, issue := range result.Warnings {
		Logger().Warn(issue.Message, "kind", issue.Kind)
	}
	for _, issue := range result.Errors {
		Logger().Error(issue.Message, "kind", issue.Kind)
	}
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(checkCmd)
	buildCmd.Flags().BoolVar(&buildStrict, "strict", false, "abort on errors before writing outputs")
}
