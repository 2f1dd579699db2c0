package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/shlint/internal/driver"
)

// lintCmd represents the lint command.
var lintCmd = newLintCmd()

func newLintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Report style issues without modifying files",
		Long: `Lint scans shell scripts and reports style issues with their configured
severity. The exit status is 1 only when at least one error-severity
issue is found; warnings and informational issues never fail a run.
Directory arguments are walked for .sh and .bash files.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Lint(driver.LintArgs{
				Paths:   parsePaths(args),
				Threads: parallelFlag,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
