// Package cmd provides the root command and CLI setup for shlint.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/shlint/internal/adapter"
	"github.com/mouse-blink/shlint/internal/config"
	"github.com/mouse-blink/shlint/internal/controller"
	"github.com/mouse-blink/shlint/internal/driver"
	"github.com/mouse-blink/shlint/internal/logging"
	m "github.com/mouse-blink/shlint/internal/model"
)

var (
	configFlag    string
	verbosityFlag int
	parallelFlag  int
)

var ui controller.UI
var workflow driver.Workflow

// rootCmd represents the base command when called without any
// subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shlint",
		Short: "Shell script style checker and formatter",
		Long: `Shlint checks shell scripts against a configurable style guide and can
rewrite violations in place. The formatter tracks heredocs, quoted
strings, comments, and expansion forms so protected regions are never
modified, and running it twice never changes a file the second time.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to a .shlint.yaml configuration file")
	cmd.PersistentFlags().IntVarP(&verbosityFlag, "verbosity", "v", 0, "log verbosity (0=warn, 1=info, 2=debug)")
	cmd.PersistentFlags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of files to process concurrently")

	return cmd
}

// setup wires the adapters and workflow once flags are parsed. Tests
// inject a mock workflow before executing; an existing workflow is
// kept.
func setup(cmd *cobra.Command) error {
	logging.Setup(verbosityFlag)

	if workflow != nil {
		return nil
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	ui = controller.NewUI(cmd.Root(), controller.IsTTY(os.Stdout))
	workflow = driver.NewWorkflow(adapter.NewLocalScriptFSAdapter(), ui, cfg)

	return nil
}

// resolveConfig loads --config when given, falls back to .shlint.yaml
// in the working directory, and otherwise uses the defaults.
func resolveConfig() (*config.Config, error) {
	if configFlag != "" {
		return config.Load(configFlag)
	}

	if _, err := os.Stat(".shlint.yaml"); err == nil {
		return config.Load(".shlint.yaml")
	}

	return config.Default(), nil
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
