package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths locates the catalog on disk. Root is the catalog checkout. The
// remaining entries are relative to <root>/<docs_dir> unless absolute.
type Paths struct {
	Root          string `toml:"root"`
	DocsDir       string `toml:"docs_dir"`
	ComponentsDir string `toml:"components_dir"`
	RegistryDir   string `toml:"registry_dir"`
	PagePath      string `toml:"page_path"`
}

// Site describes the published documentation site.
type Site struct {
	BaseURL string `toml:"base_url"`
}

// Build contains switches for registry builds.
type Build struct {
	Strict bool `toml:"strict"`
}

// Editor selects the command used to open component pages. The command may
// carry arguments, e.g. "code --wait". Empty falls back to $EDITOR.
type Editor struct {
	Command string `toml:"command"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Category declares one identifier category. Floor is the lowest number
// handed out for the category; nil means the built-in floor.
type Category struct {
	Code  string `toml:"code"`
	Title string `toml:"title"`
	Floor *int   `toml:"floor"`
}

// Family reserves the numeric block Start..End of a category for one
// part series.
type Family struct {
	Key      string `toml:"key"`
	Category string `toml:"category"`
	Start    int    `toml:"start"`
	End      int    `toml:"end"`
	Alias    string `toml:"alias"`
}

// Config encapsulates all configuration values for partdex.
//
// Configuration sections:
//   - Paths: catalog root and docs layout
//   - Site: published site base URL for page links
//   - Build: registry build switches
//   - Editor: command for opening pages
//   - Logging: log level and format
//   - Categories: identifier categories, replacing the built-in set when declared
//   - Families: reserved numeric ranges inside categories
type Config struct {
	Paths      Paths      `toml:"paths"`
	Site       Site       `toml:"site"`
	Build      Build      `toml:"build"`
	Editor     Editor     `toml:"editor"`
	Logging    Logging    `toml:"logging"`
	Categories []Category `toml:"categories"`
	Families   []Family   `toml:"families"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/partdex/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has the catalog root expanded and all defaults applied.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("partdex.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// DocsPath returns the absolute documentation directory.
func (c *Config) DocsPath() string {
	return resolveUnder(c.Paths.Root, c.Paths.DocsDir)
}

// ComponentsPath returns the absolute directory scanned for component pages.
func (c *Config) ComponentsPath() string {
	return resolveUnder(c.DocsPath(), c.Paths.ComponentsDir)
}

// RegistryPath returns the absolute directory registry snapshots are
// written to.
func (c *Config) RegistryPath() string {
	return resolveUnder(c.DocsPath(), c.Paths.RegistryDir)
}

// PageFilePath returns the absolute path of the generated registry page.
func (c *Config) PageFilePath() string {
	return resolveUnder(c.DocsPath(), c.Paths.PagePath)
}

func resolveUnder(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

// PageURL returns the public URL for a docs-relative page path, or the
// empty string when no base URL is configured. index.md pages collapse
// onto their directory URL the way MkDocs publishes them.
func (s Site) PageURL(relPage string) string {
	if s.BaseURL == "" {
		return ""
	}
	rel := path.Clean(filepath.ToSlash(relPage))
	if strings.EqualFold(path.Base(rel), "index.md") {
		dir := path.Dir(rel)
		if dir == "." {
			rel = ""
		} else {
			rel = dir + "/"
		}
	} else {
		rel = strings.TrimSuffix(rel, ".md") + "/"
	}
	escaped := (&url.URL{Path: rel}).EscapedPath()
	return s.BaseURL + escaped
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
