package config

import (
	"errors"
	"fmt"
)

// knownScanFields mirrors the comparison schema in internal/compare. Kept as a
// literal so config stays dependency-free; compare.New re-checks field names.
var knownScanFields = map[string]struct{}{
	"rating":       {},
	"tags":         {},
	"color_labels": {},
	"history":      {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateScan() error {
	if c.Scan.MinRating < -1 || c.Scan.MinRating > 5 {
		return errors.New("scan.min_rating must be between -1 (rejected) and 5")
	}
	if len(c.Scan.SidecarExtension) < 2 {
		return errors.New("scan.sidecar_extension must name an extension, e.g. \".xmp\"")
	}
	for _, name := range c.Scan.DisabledFields {
		if _, ok := knownScanFields[name]; !ok {
			return fmt.Errorf("scan.disabled_fields: unknown field %q", name)
		}
	}
	if len(c.Scan.DisabledFields) >= len(knownScanFields) {
		return errors.New("scan.disabled_fields disables every comparison field")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
