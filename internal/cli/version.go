package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print the version, commit, and build date of sarif-to-md.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sarif-to-md version %s\n", versionStr)
			if commitStr != "none" && commitStr != "" {
				fmt.Fprintf(out, "  commit: %s\n", commitStr)
			}
			if dateStr != "unknown" && dateStr != "" {
				fmt.Fprintf(out, "  built:  %s\n", dateStr)
			}
		},
	}
}
