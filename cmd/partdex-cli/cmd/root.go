package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"partdex/internal/adapters/catalogfs"
	"partdex/internal/application"
	"partdex/internal/config"
	"partdex/internal/logging"
	"partdex/internal/ports"
	"partdex/internal/registry"
)

var (
	configPath string

	cfg                *config.Config
	loadedConfigPath   string
	loadedConfigExists bool
	repo               ports.CatalogRepository
	rules              *registry.Ruleset
	logger             *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "partdex-cli",
	Short: "CLI for the component ID registry",
	Long: `partdex-cli manages a personal electronics-parts catalog: Markdown
pages carry component records, and a generated registry tracks which
IDs are taken and which are free.

It provides commands to build the registry page, allocate IDs, create
component pages, and search the catalog.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help and for config bootstrap
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "init" {
			return nil
		}

		loaded, path, exists, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		loadedConfigPath = path
		loadedConfigExists = exists
		logger = logging.New(cfg.Logging)

		rules, err = application.BuildRuleset(cfg)
		if err != nil {
			return err
		}
		repo = catalogfs.NewRepository(cfg)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to the config file (default: ~/.config/partdex/config.toml, then ./partdex.toml)")
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	return cfg
}

// GetRepo returns the initialized repository
func GetRepo() ports.CatalogRepository {
	return repo
}

// GetRules returns the ID allocation ruleset
func GetRules() *registry.Ruleset {
	return rules
}

// Logger returns the process logger
func Logger() *log.Logger {
	return logger
}
