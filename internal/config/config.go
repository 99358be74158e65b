// Package config handles loading and validating sarif-to-md configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/fulgas/sarif-to-md/internal/pathfilter"
)

// FileName is the configuration file looked up in the working directory
const FileName = ".sarif-to-md.hcl"

// Config represents the sarif-to-md configuration
type Config struct {
	Version int           `hcl:"version,attr"`
	Output  *OutputConfig `hcl:"output,block"`
	Paths   *PathsConfig  `hcl:"paths,block"`

	// Internal: path to the loaded config file (empty if using defaults)
	configPath string
}

// OutputConfig defines report output settings
type OutputConfig struct {
	Format string `hcl:"format,optional"`
	Emoji  *bool  `hcl:"emoji,optional"`
	Color  string `hcl:"color,optional"`
}

// PathsConfig defines which finding locations are kept in the report
type PathsConfig struct {
	Include []string `hcl:"include,optional"`
	Exclude []string `hcl:"exclude,optional"`
}

// ConfigPath returns the path to the loaded config file, or empty if using defaults
func (c *Config) ConfigPath() string {
	return c.configPath
}

// EmojiEnabled returns whether reports are decorated with emoji
func (c *Config) EmojiEnabled() bool {
	if c.Output == nil || c.Output.Emoji == nil {
		return false
	}
	return *c.Output.Emoji
}

// Filter returns the path filter described by the paths block
func (c *Config) Filter() *pathfilter.Filter {
	if c.Paths == nil {
		return pathfilter.DefaultFilter()
	}
	return pathfilter.New(c.Paths.Include, c.Paths.Exclude)
}

// Load loads configuration from the specified path or searches for it.
// Search order: configPath (if provided), .sarif-to-md.hcl in cwd
func Load(configPath string) (*Config, error) {
	var path string

	if configPath != "" {
		// Explicit path provided
		path = configPath
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else {
		path = findConfigFile()
	}

	if path == "" {
		// No config found, use defaults
		return Default(), nil
	}

	return loadFromFile(path)
}

// findConfigFile searches for the config file in the current directory
func findConfigFile() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	cwdPath := filepath.Join(cwd, FileName)
	if _, err := os.Stat(cwdPath); err == nil {
		return cwdPath
	}
	return ""
}

// loadFromFile loads and parses a configuration file
func loadFromFile(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", formatDiagnostics(diags))
	}

	var config Config
	decodeDiags := gohcl.DecodeBody(file.Body, evalContext(), &config)
	if decodeDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", formatDiagnostics(decodeDiags))
	}

	config.configPath = path

	// Apply defaults for missing optional blocks
	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// evalContext exposes the process environment as env.<NAME>
func evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" || !utf8.ValidString(value) {
			continue
		}
		vars[name] = cty.StringVal(value)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}

// formatDiagnostics formats HCL diagnostics into a readable error string
func formatDiagnostics(diags hcl.Diagnostics) string {
	if len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	for i, diag := range diags {
		if i > 0 {
			b.WriteString("; ")
		}
		if diag.Subject != nil {
			fmt.Fprintf(&b, "%s:%d: ", diag.Subject.Filename, diag.Subject.Start.Line)
		}
		b.WriteString(diag.Summary)
		if diag.Detail != "" {
			b.WriteString(": ")
			b.WriteString(diag.Detail)
		}
	}
	return b.String()
}

// applyDefaults fills in default values for missing optional config blocks
func applyDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Paths == nil {
		cfg.Paths = defaults.Paths
	} else if len(cfg.Paths.Include) == 0 {
		cfg.Paths.Include = defaults.Paths.Include
	}

	if cfg.Output == nil {
		cfg.Output = defaults.Output
	} else {
		if cfg.Output.Format == "" {
			cfg.Output.Format = defaults.Output.Format
		}
		if cfg.Output.Emoji == nil {
			cfg.Output.Emoji = defaults.Output.Emoji
		}
		if cfg.Output.Color == "" {
			cfg.Output.Color = defaults.Output.Color
		}
	}
}
