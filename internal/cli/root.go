package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fulgas/sarif-to-md/internal/output"
)

var (
	versionStr string
	commitStr  string
	dateStr    string
)

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	versionStr = version
	commitStr = commit
	dateStr = date
}

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	configPath string
	color      string
	verbose    bool
}

// reportOptions are the flags of a command that writes a report
type reportOptions struct {
	input  string
	output string
	format string
	emoji  bool
}

// NewRootCommand builds the sarif-to-md command tree. Each call returns
// fresh commands with their own flag state.
func NewRootCommand() *cobra.Command {
	global := &globalOptions{}
	opts := &reportOptions{}

	rootCmd := &cobra.Command{
		Use:   "sarif-to-md",
		Short: "Convert SARIF reports to Markdown",
		Long: `sarif-to-md converts SARIF 2.1.0 static analysis results into a
Markdown report, as CommonMark or GitHub-flavored Markdown.

The input may be a single file or a glob such as "reports/**/*.sarif";
the runs of every matching file are merged into one report.`,
		Example: `  sarif-to-md -i results.sarif
  sarif-to-md -i "reports/**/*.sarif" -f github-flavored -e -o report.md`,
		Version:       versionStr,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, global, opts, sarifSource)
		},
	}

	rootCmd.PersistentFlags().StringVar(&global.configPath, "config", "", "Path to config file (default: ./.sarif-to-md.hcl)")
	rootCmd.PersistentFlags().StringVar(&global.color, "color", "auto", "Color mode for diagnostics: auto, always, never")
	rootCmd.PersistentFlags().BoolVarP(&global.verbose, "verbose", "v", false, "Verbose diagnostic logging")

	addReportFlags(rootCmd, opts)

	rootCmd.AddCommand(newSnykCommand(global))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// addReportFlags registers the input and output flags on cmd
func addReportFlags(cmd *cobra.Command, opts *reportOptions) {
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Input file or glob pattern")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write output to file instead of stdout")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(output.FormatCommonMark), "Output format: common-mark, github-flavored")
	cmd.Flags().BoolVarP(&opts.emoji, "emoji", "e", false, "Decorate the report with emoji")
	_ = cmd.MarkFlagRequired("input")
}

// Execute runs the root command, printing any error to stderr
func Execute() error {
	rootCmd := NewRootCommand()
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		mode := "auto"
		if cmd != nil {
			if m, ferr := cmd.Flags().GetString("color"); ferr == nil {
				mode = m
			}
		}
		printError(os.Stderr, err, shouldUseColor(mode, os.Stderr))
	}
	return err
}

func printError(w io.Writer, err error, colorEnabled bool) {
	red := color.New(color.FgRed, color.Bold)
	if colorEnabled {
		red.EnableColor()
	} else {
		red.DisableColor()
	}
	fmt.Fprintf(w, "%s %v\n", red.Sprint("Error:"), err)
}

func shouldUseColor(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // auto
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if the stream is a terminal
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
}
