package cli

import (
	"github.com/spf13/cobra"
)

func newSnykCommand(global *globalOptions) *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "snyk",
		Short: "Convert Snyk JSON output to Markdown",
		Long: `Convert the output of "snyk test --json" into a Markdown vulnerability
report. Both single-project output and the array produced by
--all-projects are accepted.`,
		Example: `  snyk test --json > snyk.json
  sarif-to-md snyk -i snyk.json -f github-flavored -o snyk.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, global, opts, snykSource)
		},
	}

	addReportFlags(cmd, opts)

	return cmd
}
