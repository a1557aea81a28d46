package cmd

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"partdex/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and bootstrap the configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a commented sample config",
	Long: `Write a commented sample configuration file. Without a path the
user config location is used.

Examples:
  partdex-cli config init
  partdex-cli config init ./partdex.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			defaultPath, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}
			path = defaultPath
		}

		expanded, err := config.ExpandPath(path)
		if err != nil {
			return err
		}
		if _, err := os.Stat(expanded); err == nil {
			return fmt.Errorf("config already exists: %s", expanded)
		}

		if err := config.CreateSample(expanded); err != nil {
			return err
		}
		fmt.Printf("Wrote sample config to %s\n", expanded)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	Long: `Print the effective configuration as TOML, with defaults applied
and paths expanded.

Example:
  partdex-cli config show`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if loadedConfigExists {
			fmt.Printf("# %s\n", loadedConfigPath)
		} else {
			fmt.Println("# built-in defaults, no config file found")
		}

		out, err := toml.Marshal(GetConfig())
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
