package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/shlint/internal/driver"
)

// fmtCmd represents the fmt command.
var fmtCmd = newFmtCmd()

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Rewrite style violations in place",
		Long: `Fmt rewrites lines that violate the configured style rules. Heredoc
bodies, quoted strings, comments, and expansion forms pass through
byte-for-byte unchanged, and each file is replaced atomically with its
original permission bits preserved. Formatting an already formatted
file is a no-op.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Format(driver.FormatArgs{
				Paths:   parsePaths(args),
				Threads: parallelFlag,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
