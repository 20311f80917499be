// Package config loads, normalizes, and validates tidy configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and preserves the order of the category table,
// which is semantically significant during classification. Always obtain
// settings through this package so downstream code receives sanitized paths
// and canonical enum values.
package config
