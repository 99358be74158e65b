// Package logging builds the diagnostic logger used by the command line.
package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Name is the logger name shown in every line
const Name = "sarif-to-md"

// Options configure the logger
type Options struct {
	// Verbose lowers the level from warn to debug
	Verbose bool
	// Color enables colored level names
	Color bool
	// Output defaults to os.Stderr
	Output io.Writer
}

// New creates a logger writing to stderr unless Output is set.
func New(opts Options) hclog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	level := hclog.Warn
	if opts.Verbose {
		level = hclog.Debug
	}

	color := hclog.ColorOff
	if opts.Color {
		color = hclog.AutoColor
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   Name,
		Level:  level,
		Output: out,
		Color:  color,
	})
}
