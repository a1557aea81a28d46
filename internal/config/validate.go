package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable. Category and family
// semantics are checked later when the registry ruleset is built, so a
// range conflict is reported as a registry error with both offenders
// named rather than as a config decode failure.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.Root == "" {
		return errors.New("paths.root must be set")
	}
	if c.Paths.DocsDir == "" {
		return errors.New("paths.docs_dir must be set")
	}
	if c.Paths.ComponentsDir == "" {
		return errors.New("paths.components_dir must be set")
	}
	if c.Paths.RegistryDir == "" {
		return errors.New("paths.registry_dir must be set")
	}
	if c.Paths.PagePath == "" {
		return errors.New("paths.page_path must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error, fatal", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("logging.format %q is not one of text, json, logfmt", c.Logging.Format)
	}
	return nil
}
