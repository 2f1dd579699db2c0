package driver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/shlint/internal/adapter"
	"github.com/mouse-blink/shlint/internal/config"
	"github.com/mouse-blink/shlint/internal/controller"
	"github.com/mouse-blink/shlint/internal/logging"
	m "github.com/mouse-blink/shlint/internal/model"
)

// ErrIssuesFound is returned by Lint when at least one error-severity
// issue was reported. Warnings and info never trip it.
var ErrIssuesFound = errors.New("style errors found")

// ErrEmptyOutput is the generation failure raised when formatting a
// non-empty file produces an empty buffer; the original file is left
// untouched.
var ErrEmptyOutput = errors.New("formatting produced empty output")

// LintArgs holds the inputs of a lint run.
type LintArgs struct {
	Paths   []m.Path
	Threads int
}

// FormatArgs holds the inputs of a format run.
type FormatArgs struct {
	Paths   []m.Path
	Threads int
}

// ParseArgs holds the inputs of a parse dump run.
type ParseArgs struct {
	Paths []m.Path
}

// Workflow defines the file-level operations behind the CLI commands.
type Workflow interface {
	Lint(args LintArgs) error
	Format(args FormatArgs) error
	Parse(args ParseArgs) error
}

type workflow struct {
	fs  adapter.ScriptFSAdapter
	ui  controller.UI
	cfg *config.Config
	log zerolog.Logger
}

// NewWorkflow creates a Workflow instance with the provided adapters.
func NewWorkflow(fs adapter.ScriptFSAdapter, ui controller.UI, cfg *config.Config) Workflow {
	return &workflow{
		fs:  fs,
		ui:  ui,
		cfg: cfg,
		log: logging.GetLogger("driver"),
	}
}

// Lint checks every file and reports issues. Files are independent, so
// they fan out over Threads workers; output order stays deterministic
// because results are collected by position. An I/O failure on one
// file is reported and the rest still run; the returned error keeps
// the two failure causes apart so an unreadable file is never labeled
// a style error.
func (w *workflow) Lint(args LintArgs) error {
	paths, err := w.fs.Collect(args.Paths)
	if err != nil {
		return err
	}

	results := w.fanOut(paths, args.Threads, w.LintFile)

	foundErrors := false
	ioFailed := false

	for _, result := range results {
		if result.Err != nil {
			ioFailed = true

			w.ui.Errorf("%s: %v\n", result.Path, result.Err)

			continue
		}

		if err := w.ui.Issues(result); err != nil {
			return err
		}

		if result.HasErrors() {
			foundErrors = true
		}
	}

	if err := w.ui.Summary(results); err != nil {
		return err
	}

	if ioFailed {
		return fmt.Errorf("linting failed for at least one file")
	}

	if foundErrors {
		return ErrIssuesFound
	}

	return nil
}

// Format rewrites every file in place and reports fix counts. A
// failure on one file does not stop the others.
func (w *workflow) Format(args FormatArgs) error {
	paths, err := w.fs.Collect(args.Paths)
	if err != nil {
		return err
	}

	results := w.fanOut(paths, args.Threads, w.FormatFile)

	failed := false

	for _, result := range results {
		if result.Err != nil {
			failed = true

			w.ui.Errorf("%s: %v\n", result.Path, result.Err)

			continue
		}

		w.ui.FixReport(result)
	}

	if failed {
		return fmt.Errorf("formatting failed for at least one file")
	}

	return nil
}

// Parse dumps the per-line classification of every file. An
// unreadable file is reported and the remaining files are still
// dumped.
func (w *workflow) Parse(args ParseArgs) error {
	paths, err := w.fs.Collect(args.Paths)
	if err != nil {
		return err
	}

	failed := false

	for _, path := range paths {
		lines, _, err := w.fs.ReadLines(path)
		if err != nil {
			failed = true

			w.ui.Errorf("%s: %v\n", path, err)

			continue
		}

		parsed := NewProcessor(w.cfg).Parse(lines)
		if err := w.ui.ParseDump(path, parsed); err != nil {
			return err
		}
	}

	if failed {
		return fmt.Errorf("parsing failed for at least one file")
	}

	return nil
}

// LintFile runs the rule engine over one file. I/O failures land in
// the result's Err field; lint issues are data, never errors.
func (w *workflow) LintFile(path m.Path) m.FileResult {
	lines, _, err := w.fs.ReadLines(path)
	if err != nil {
		w.log.Debug().Err(err).Str("path", string(path)).Msg("read failed")

		return m.FileResult{Path: path, Err: err}
	}

	issues := NewProcessor(w.cfg).Lint(lines)

	return m.FileResult{Path: path, Issues: issues}
}

// FormatFile rewrites one file in place, preserving its permission
// bits and whether the file ended with a newline. An empty output
// buffer for a non-empty input is a generation error: the original
// file is left untouched.
func (w *workflow) FormatFile(path m.Path) m.FileResult {
	lines, finalNewline, err := w.fs.ReadLines(path)
	if err != nil {
		w.log.Debug().Err(err).Str("path", string(path)).Msg("read failed")

		return m.FileResult{Path: path, Err: err}
	}

	fixed, fixes := NewProcessor(w.cfg).Format(lines)

	if len(fixed) == 0 {
		if len(lines) == 0 {
			return m.FileResult{Path: path}
		}

		return m.FileResult{Path: path, Err: ErrEmptyOutput}
	}

	if fixes == 0 {
		return m.FileResult{Path: path}
	}

	info, err := w.fs.FileInfo(path)
	if err != nil {
		return m.FileResult{Path: path, Err: err}
	}

	content := strings.Join(fixed, "\n")
	if finalNewline {
		content += "\n"
	}

	if err := w.fs.WriteFileAtomic(path, []byte(content), info.Mode().Perm()); err != nil {
		return m.FileResult{Path: path, Err: err}
	}

	w.log.Info().Str("path", string(path)).Int("fixes", fixes).Msg("rewrote file")

	return m.FileResult{Path: path, Fixes: fixes}
}

// fanOut processes paths with up to threads concurrent workers and
// returns results in input order.
func (w *workflow) fanOut(paths []m.Path, threads int, process func(m.Path) m.FileResult) []m.FileResult {
	if threads <= 0 {
		threads = 1
	}

	results := make([]m.FileResult, len(paths))

	var group errgroup.Group

	group.SetLimit(threads)

	for i, path := range paths {
		group.Go(func() error {
			results[i] = process(path)

			return nil
		})
	}

	// Workers never return errors; per-file failures live in the
	// result slots.
	_ = group.Wait()

	return results
}
