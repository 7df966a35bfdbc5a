// Package config loads, normalizes, and validates dtcheck configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads the optional TOML file at ~/.config/dtcheck/config.toml.
// The Config type centralizes every knob the CLI needs: state and log
// directories, scan field selection, the sidecar filename extension, and
// logging output shape.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
