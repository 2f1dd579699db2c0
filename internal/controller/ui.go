// Package controller provides output adapters for displaying lint and
// format results.
package controller

import (
	m "github.com/mouse-blink/shlint/internal/model"
)

// UI defines the interface for reporting results to the user.
// Implementations can use different output methods (simple text, TUI).
type UI interface {
	// Issues reports the issues found in one file.
	Issues(result m.FileResult) error

	// FixReport reports the number of fixes applied to one file.
	FixReport(result m.FileResult)

	// ParseDump shows the per-line classification of one file.
	ParseDump(path m.Path, lines []m.ParsedLine) error

	// Summary renders the end-of-run overview for all files.
	Summary(results []m.FileResult) error

	// Errorf reports an I/O-class failure.
	Errorf(format string, args ...interface{})
}
