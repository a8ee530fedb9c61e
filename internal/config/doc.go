// Package config loads, normalizes, and validates c64org configuration.
//
// It supplies built-in defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The category table lives here so runs
// can swap in alternate tables without touching the classifier; flags on
// the command line override whatever the file provides.
//
// Always obtain settings through this package so downstream code receives
// canonical action names, lowercased extensions, and clear validation
// errors.
package config
