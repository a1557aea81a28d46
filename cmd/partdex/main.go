package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"partdex/internal/adapters/catalogfs"
	"partdex/internal/adapters/editor"
	"partdex/internal/adapters/tui"
	"partdex/internal/application"
	"partdex/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to the config file")
	flag.Parse()

	cfg, _, _, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rules, err := application.BuildRuleset(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Initialize adapters
	repo := catalogfs.NewRepository(cfg)
	editorOpener := editor.NewOpener(cfg.Editor.Command)

	// Create and run TUI app
	app := tui.NewApp(repo, rules, editorOpener)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
