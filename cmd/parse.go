package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/shlint/internal/driver"
)

// parseCmd represents the parse command.
var parseCmd = newParseCmd()

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [paths...]",
		Short: "Dump the per-line context classification",
		Long: `Parse prints each line's classified lexical context and tokens. This is
a debugging aid for understanding why a rule did or did not apply; the
output is human-readable and not meant to be consumed programmatically.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Parse(driver.ParseArgs{Paths: parsePaths(args)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
