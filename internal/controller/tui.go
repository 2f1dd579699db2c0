package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/mouse-blink/shlint/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display. Issues
// are buffered per file and browsed in a scrollable list once the run
// completes.
type TUI struct {
	output   io.Writer
	buffered []m.FileResult
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Issues buffers the file's issues for the end-of-run browser.
func (t *TUI) Issues(result m.FileResult) error {
	t.buffered = append(t.buffered, result)

	return nil
}

// FixReport prints the fix count for one formatted file.
func (t *TUI) FixReport(result m.FileResult) {
	switch result.Fixes {
	case 0:
		_, _ = fmt.Fprintf(t.output, "%s: already formatted\n", result.Path)
	default:
		_, _ = fmt.Fprintf(t.output, "%s: %d fix(es) applied\n", result.Path, result.Fixes)
	}
}

// ParseDump prints the per-line classification.
func (t *TUI) ParseDump(path m.Path, lines []m.ParsedLine) error {
	_, _ = fmt.Fprintf(t.output, "%s\n", path)

	for _, line := range lines {
		_, _ = fmt.Fprintf(t.output, "%5d  %-16s %v\n", line.Number, line.Context, line.Tokens)
	}

	return nil
}

// Summary shows the buffered issues in a scrollable Bubble Tea list.
// Short lists are printed directly without entering the alt screen.
func (t *TUI) Summary(_ []m.FileResult) error {
	model := newIssueModel(t.buffered)

	// Get initial terminal size
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	// If the list is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())

		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// Errorf reports a failure to stderr.
func (t *TUI) Errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, format, args...)
}
