// Package config loads the console's YAML configuration.
//
// Environment variables in the ${VAR_NAME} format are expanded before
// parsing, duration strings are converted to time.Duration, and
// Validate enforces the required fields. A missing config file falls
// back to defaults so the console works against a local backend out of
// the box.
package config
