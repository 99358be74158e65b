package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/fulgas/sarif-to-md/internal/config"
	"github.com/fulgas/sarif-to-md/internal/logging"
	"github.com/fulgas/sarif-to-md/internal/output"
	"github.com/fulgas/sarif-to-md/internal/pathfilter"
	"github.com/fulgas/sarif-to-md/internal/report"
	"github.com/fulgas/sarif-to-md/internal/sarif"
)

// source describes how a command turns input files into a document
type source struct {
	kind  report.Kind
	parse func(content []byte) (*report.Document, error)
}

var sarifSource = source{
	kind:  report.KindSARIF,
	parse: report.Parse,
}

var snykSource = source{
	kind: report.KindSnyk,
	parse: func(content []byte) (*report.Document, error) {
		return report.ParseAs(report.KindSnyk, content)
	},
}

// settings are the effective options after merging config and flags
type settings struct {
	format output.Format
	emoji  bool
	color  string
	filter *pathfilter.Filter
}

func runConvert(cmd *cobra.Command, global *globalOptions, opts *reportOptions, src source) error {
	cfg, err := config.Load(global.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	s, err := resolveSettings(cmd, cfg, global, opts)
	if err != nil {
		return err
	}

	logger := logging.New(logging.Options{
		Verbose: global.verbose,
		Color:   shouldUseColor(s.color, os.Stderr),
		Output:  cmd.ErrOrStderr(),
	})
	if path := cfg.ConfigPath(); path != "" {
		logger.Debug("loaded config", "path", path)
	}

	doc, err := loadDocument(opts.input, src, logger)
	if err != nil {
		return err
	}

	if doc.Kind == report.KindSARIF {
		before := doc.SARIF.ResultCount()
		doc.SARIF = sarif.FilterResults(doc.SARIF, s.filter.Allows)
		if dropped := before - doc.SARIF.ResultCount(); dropped > 0 {
			logger.Info("filtered findings by path", "dropped", dropped, "kept", doc.SARIF.ResultCount())
		}
	}

	renderer := output.NewRenderer(src.kind, s.format, output.Options{WithEmoji: s.emoji})
	var buf bytes.Buffer
	if err := renderer.Render(&buf, doc); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	return writeReport(cmd, opts.output, buf.Bytes(), logger)
}

// resolveSettings applies flags over config values. A flag only wins when
// it was set explicitly.
func resolveSettings(cmd *cobra.Command, cfg *config.Config, global *globalOptions, opts *reportOptions) (*settings, error) {
	formatName := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		formatName = opts.format
	}
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}

	emoji := cfg.EmojiEnabled()
	if cmd.Flags().Changed("emoji") {
		emoji = opts.emoji
	}

	colorMode := cfg.Output.Color
	if cmd.Flags().Changed("color") {
		colorMode = global.color
	}
	if !config.IsValidColorMode(colorMode) {
		return nil, fmt.Errorf("invalid --color value %q: must be auto, always, or never", colorMode)
	}

	return &settings{
		format: format,
		emoji:  emoji,
		color:  colorMode,
		filter: cfg.Filter(),
	}, nil
}

// loadDocument parses every file matching pattern and merges them in
// sorted path order.
func loadDocument(pattern string, src source, logger hclog.Logger) (*report.Document, error) {
	paths, err := pathfilter.Glob(pattern)
	if err != nil {
		return nil, err
	}
	logger.Debug("matched input files", "pattern", pattern, "count", len(paths))

	docs := make([]*report.Document, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}

		doc, err := src.parse(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		logger.Debug("parsed input", "path", path, "kind", doc.Kind.String())
		docs = append(docs, doc)
	}

	if len(docs) == 1 {
		return docs[0], nil
	}
	return report.Merge(docs...)
}

func writeReport(cmd *cobra.Command, path string, content []byte, logger hclog.Logger) error {
	if path == "" {
		if _, err := cmd.OutOrStdout().Write(content); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	logger.Debug("wrote report", "path", path, "bytes", len(content))
	return nil
}
