// Package driver walks a file's lines once, threading the cross-line
// state (heredoc tracking, indent depth, continuation buffering) that
// the per-line rules cannot see.
package driver

import (
	"regexp"
	"strings"

	"github.com/mouse-blink/shlint/internal/classify"
	"github.com/mouse-blink/shlint/internal/config"
	m "github.com/mouse-blink/shlint/internal/model"
	"github.com/mouse-blink/shlint/internal/rules"
)

// Processor runs the rule engine over one file's lines. It owns a
// fresh ParseState per call; nothing is shared between files.
type Processor struct {
	cfg *config.Config
}

// NewProcessor creates a Processor bound to a resolved configuration.
func NewProcessor(cfg *config.Config) *Processor {
	return &Processor{cfg: cfg}
}

// Lint classifies every line and collects issues. Heredoc bodies and
// their terminators are never handed to the rule engine. Issues come
// out ordered by line number, then by the fixed rule order.
func (p *Processor) Lint(lines []string) []m.Issue {
	state := &m.ParseState{}

	var issues []m.Issue

	check := func(line m.Line) {
		p.bookkeepBefore(line, state)

		for _, rule := range rules.Checks() {
			if found := rule.Check(line, p.cfg); found != nil {
				issues = append(issues, *found)
			}
		}

		p.bookkeepAfter(line, state)
	}

	for i, text := range lines {
		line := m.Line{Text: text, Number: i + 1}

		if state.InHeredoc {
			if classify.IsHeredocEnd(text, state.HeredocDelimiter) {
				state.LeaveHeredoc()
			}

			continue
		}

		// Heredoc detection takes precedence over continuation
		// buffering; a pending continuation is flushed first.
		if classify.Line(text) == m.ContextHeredocStart {
			p.flushLint(state, check)
			check(line)
			state.EnterHeredoc(classify.HeredocDelimiter(text))

			continue
		}

		if hasContinuation(text) {
			state.Continuation = append(state.Continuation, line)

			continue
		}

		if len(state.Continuation) > 0 {
			state.Continuation = append(state.Continuation, line)
			p.flushLint(state, check)

			continue
		}

		check(line)
	}

	p.flushLint(state, check)

	return issues
}

// Format rewrites lines that violate the configured rules and returns
// the new line slice plus the number of fixes applied.
func (p *Processor) Format(lines []string) ([]string, int) {
	state := &m.ParseState{}

	var out []string

	fixes := 0

	for i, text := range lines {
		line := m.Line{Text: text, Number: i + 1}

		if state.InHeredoc {
			out = append(out, text)

			if classify.IsHeredocEnd(text, state.HeredocDelimiter) {
				state.LeaveHeredoc()
			}

			continue
		}

		if classify.Line(text) == m.ContextHeredocStart {
			out, fixes = p.flushFormat(state, out, fixes)

			p.bookkeepBefore(line, state)
			out = append(out, text)
			p.bookkeepAfter(line, state)

			state.EnterHeredoc(classify.HeredocDelimiter(text))

			continue
		}

		if hasContinuation(text) {
			state.Continuation = append(state.Continuation, line)

			continue
		}

		if len(state.Continuation) > 0 {
			state.Continuation = append(state.Continuation, line)
			out, fixes = p.flushFormat(state, out, fixes)

			continue
		}

		out, fixes = p.formatLine(line, state, true, out, fixes)
	}

	out, fixes = p.flushFormat(state, out, fixes)

	return out, fixes
}

// Parse produces the debug dump: per line, the classifier verdict and
// the whitespace-split tokens.
func (p *Processor) Parse(lines []string) []m.ParsedLine {
	parsed := make([]m.ParsedLine, 0, len(lines))

	for i, text := range lines {
		parsed = append(parsed, m.ParsedLine{
			Number:  i + 1,
			Context: classify.Line(text),
			Tokens:  strings.Fields(text),
		})
	}

	return parsed
}

// formatLine runs the fixers over one line and appends the result.
// fixIndent is false for lines inside a continuation group past the
// first, where the tracked nesting depth does not apply.
func (p *Processor) formatLine(line m.Line, state *m.ParseState, fixIndent bool, out []string, fixes int) ([]string, int) {
	p.bookkeepBefore(line, state)

	if fixIndent {
		if fixed, changed := rules.FixIndentation(line, state.IndentLevel, p.cfg); changed {
			line = fixed
			fixes++
		}
	}

	current := []m.Line{line}

	for _, rule := range rules.Fixers() {
		var next []m.Line

		changed := false

		for _, l := range current {
			if replacement, ok := rule.Fix(l, p.cfg); ok {
				next = append(next, replacement...)
				changed = true
			} else {
				next = append(next, l)
			}
		}

		current = next

		if changed {
			fixes++
		}
	}

	for _, l := range current {
		out = append(out, l.Text)
	}

	p.bookkeepAfter(line, state)

	return out, fixes
}

// flushFormat empties the continuation buffer. When the narrow
// duplicate-pipe defect is present the buffered lines are joined into
// one logical line with the doubled operator collapsed and reprocessed
// as a single line; otherwise every buffered line runs through the
// rule engine independently, preserving the original breaks.
func (p *Processor) flushFormat(state *m.ParseState, out []string, fixes int) ([]string, int) {
	buffered := state.Continuation
	state.Continuation = nil

	if len(buffered) == 0 {
		return out, fixes
	}

	if joined, ok := collapseDuplicatePipe(buffered); ok {
		return p.formatLine(joined, state, true, out, fixes+1)
	}

	for i, line := range buffered {
		out, fixes = p.formatLine(line, state, i == 0, out, fixes)
	}

	return out, fixes
}

// flushLint empties the continuation buffer in lint mode: every
// buffered line is checked independently.
func (p *Processor) flushLint(state *m.ParseState, check func(m.Line)) {
	buffered := state.Continuation
	state.Continuation = nil

	for _, line := range buffered {
		check(line)
	}
}

// hasContinuation reports whether a line ends in a trailing backslash.
func hasContinuation(text string) bool {
	return strings.HasSuffix(strings.TrimRight(text, " \t"), "\\")
}

var (
	reClosingToken = regexp.MustCompile(`^\s*(\}|fi\b|done\b|esac\b)`)
	reOpeningToken = regexp.MustCompile(`(\bthen|\bdo|\{)\s*$`)
	reFuncHeader   = regexp.MustCompile(`^\s*(?:function\s+)?[A-Za-z_][A-Za-z0-9_-]*\s*\(\s*\)\s*\{?\s*$`)
)

// bookkeepBefore decrements the indent level when a line begins with a
// closing keyword or brace. Floored at zero by ParseState.
func (p *Processor) bookkeepBefore(line m.Line, state *m.ParseState) {
	if reClosingToken.MatchString(line.Text) {
		state.Dedent()
	}
}

// bookkeepAfter increments the indent level after a line that ends
// with an opening keyword or brace, or that is a function header.
func (p *Processor) bookkeepAfter(line m.Line, state *m.ParseState) {
	trimmed := strings.TrimSpace(line.Text)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return
	}

	if reOpeningToken.MatchString(trimmed) || reFuncHeader.MatchString(trimmed) {
		state.Indent()
	}
}
