package config

import (
	"fmt"
	"strings"

	"github.com/fulgas/sarif-to-md/internal/output"
)

// ValidColorModes lists the accepted values of output.color
var ValidColorModes = []string{"auto", "always", "never"}

// Validate validates the configuration
func Validate(cfg *Config) error {
	// Version check
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (only version 1 is supported)", cfg.Version)
	}

	if cfg.Output != nil {
		if cfg.Output.Format != "" && !output.IsValidFormat(cfg.Output.Format) {
			return fmt.Errorf("invalid output format: %s (must be one of %s)",
				cfg.Output.Format, strings.Join(output.ValidFormats(), ", "))
		}
		if cfg.Output.Color != "" && !IsValidColorMode(cfg.Output.Color) {
			return fmt.Errorf("invalid color mode: %s (must be 'auto', 'always', or 'never')", cfg.Output.Color)
		}
	}

	if cfg.Paths != nil {
		if err := cfg.Filter().Validate(); err != nil {
			return fmt.Errorf("paths: %w", err)
		}
	}

	return nil
}

// IsValidColorMode reports whether mode is an accepted color mode
func IsValidColorMode(mode string) bool {
	for _, m := range ValidColorModes {
		if m == mode {
			return true
		}
	}
	return false
}
