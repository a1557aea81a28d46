package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSite()
	c.normalizeLogging()
	c.normalizeRules()
	return nil
}

func (c *Config) normalizePaths() error {
	// PARTDEX_ROOT always wins so a scratch catalog can be targeted
	// without touching the config file.
	if env := strings.TrimSpace(os.Getenv("PARTDEX_ROOT")); env != "" {
		c.Paths.Root = env
	}
	if strings.TrimSpace(c.Paths.Root) == "" {
		c.Paths.Root = defaultRoot
	}
	var err error
	if c.Paths.Root, err = expandPath(c.Paths.Root); err != nil {
		return fmt.Errorf("paths.root: %w", err)
	}
	if strings.TrimSpace(c.Paths.DocsDir) == "" {
		c.Paths.DocsDir = defaultDocsDir
	}
	if strings.TrimSpace(c.Paths.ComponentsDir) == "" {
		c.Paths.ComponentsDir = defaultComponentsDir
	}
	if strings.TrimSpace(c.Paths.RegistryDir) == "" {
		c.Paths.RegistryDir = defaultRegistryDir
	}
	if strings.TrimSpace(c.Paths.PagePath) == "" {
		c.Paths.PagePath = defaultPagePath
	}
	return nil
}

func (c *Config) normalizeSite() {
	c.Site.BaseURL = strings.TrimSpace(c.Site.BaseURL)
	if c.Site.BaseURL != "" && !strings.HasSuffix(c.Site.BaseURL, "/") {
		c.Site.BaseURL += "/"
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}

func (c *Config) normalizeRules() {
	if len(c.Categories) == 0 {
		c.Categories = DefaultCategories()
	}
	for i := range c.Categories {
		c.Categories[i].Code = strings.ToUpper(strings.TrimSpace(c.Categories[i].Code))
		c.Categories[i].Title = strings.TrimSpace(c.Categories[i].Title)
	}
	for i := range c.Families {
		c.Families[i].Key = strings.TrimSpace(c.Families[i].Key)
		c.Families[i].Category = strings.ToUpper(strings.TrimSpace(c.Families[i].Category))
		c.Families[i].Alias = strings.TrimSpace(c.Families[i].Alias)
	}
}
