package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/shlint/internal/model"
)

// SimpleUI implements UI using plain text on the cobra command's
// output writer. It is the non-interactive fallback for pipes and
// redirected output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Issues prints one line per issue in file:line: severity form.
func (s *SimpleUI) Issues(result m.FileResult) error {
	for _, issue := range result.Issues {
		s.printf("%s:%d: %s [%s] %s\n",
			result.Path, issue.Line, issue.Severity, issue.Rule, issue.Message)
	}

	return nil
}

// FixReport prints the fix count for one formatted file.
func (s *SimpleUI) FixReport(result m.FileResult) {
	switch result.Fixes {
	case 0:
		s.printf("%s: already formatted\n", result.Path)
	case 1:
		s.printf("%s: 1 fix applied\n", result.Path)
	default:
		s.printf("%s: %d fixes applied\n", result.Path, result.Fixes)
	}
}

// ParseDump renders the per-line classification as a table.
func (s *SimpleUI) ParseDump(path m.Path, lines []m.ParsedLine) error {
	s.printf("%s\n", path)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Line", "Context", "Tokens"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, line := range lines {
		table.Append([]string{
			fmt.Sprintf("%d", line.Number),
			string(line.Context),
			fmt.Sprintf("%v", line.Tokens),
		})
	}

	table.Render()
	s.printf("%s\n", tableBuffer.String())

	return nil
}

// Summary renders a per-file issue count table with totals.
func (s *SimpleUI) Summary(results []m.FileResult) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Errors", "Warnings", "Info"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	var totals [3]int

	for _, result := range results {
		var counts [3]int

		for _, issue := range result.Issues {
			counts[issue.Severity]++
			totals[issue.Severity]++
		}

		table.Append([]string{
			string(result.Path),
			fmt.Sprintf("%d", counts[m.SeverityError]),
			fmt.Sprintf("%d", counts[m.SeverityWarning]),
			fmt.Sprintf("%d", counts[m.SeverityInfo]),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		fmt.Sprintf("%d", totals[m.SeverityError]),
		fmt.Sprintf("%d", totals[m.SeverityWarning]),
		fmt.Sprintf("%d", totals[m.SeverityInfo]),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// Errorf reports a failure on the command's error writer.
func (s *SimpleUI) Errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
