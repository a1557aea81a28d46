// Package config loads, normalizes, and validates partdex configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the PARTDEX_ROOT environment
// override. Catalog paths are stored relative to the docs directory and
// resolved through the accessor methods so every command sees the same
// absolute locations.
//
// Category and family declarations are carried verbatim. Their semantic
// rules, range bounds and overlap checks included, live with the registry
// ruleset so violations surface as registry errors rather than decode
// failures.
package config
