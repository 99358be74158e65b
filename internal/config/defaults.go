package config

import "github.com/fulgas/sarif-to-md/internal/output"

// Default returns the default configuration
func Default() *Config {
	emoji := false
	return &Config{
		Version: 1,
		Output: &OutputConfig{
			Format: string(output.FormatCommonMark),
			Emoji:  &emoji,
			Color:  "auto",
		},
		Paths: &PathsConfig{
			Include: []string{"**"},
			Exclude: []string{},
		},
	}
}
