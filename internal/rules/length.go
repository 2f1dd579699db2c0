package rules

import (
	"fmt"
	"strings"

	"github.com/mouse-blink/shlint/internal/config"
	m "github.com/mouse-blink/shlint/internal/model"
)

// CheckLineLength reports lines longer than the configured maximum.
// A line of exactly the maximum length is fine.
func CheckLineLength(line m.Line, cfg *config.Config) *m.Issue {
	if Skip(config.RuleLineLength, line, cfg) {
		return nil
	}

	max := cfg.Settings.MaxLineLength
	if len(line.Text) <= max {
		return nil
	}

	return issue(config.RuleLineLength, line, cfg,
		fmt.Sprintf("line too long (%d > %d characters)", len(line.Text), max))
}

// FixLineLength wraps an overlong line at its last && or || into
//
//	part1 <op> \
//	    part2
//
// The wrap only happens when it is provably safe and final: there must
// be a logical-operator split point, both halves must fit the limit,
// and the line must not already be a continuation. Pipe split points
// are never used — wrapping at a pipe could produce the ambiguous
// duplicate-operator shape the driver has to repair. When no safe
// split exists the line is left unmodified.
func FixLineLength(line m.Line, cfg *config.Config) ([]m.Line, bool) {
	if Skip(config.RuleLineLength, line, cfg) {
		return nil, false
	}

	max := cfg.Settings.MaxLineLength
	text := line.Text

	if len(text) <= max {
		return nil, false
	}

	if strings.HasSuffix(strings.TrimRight(text, " \t"), "\\") {
		return nil, false
	}

	split := strings.LastIndex(text, " && ")
	if alt := strings.LastIndex(text, " || "); alt > split {
		split = alt
	}

	if split <= 0 {
		return nil, false
	}

	rest := strings.TrimLeft(text[split+4:], " \t")
	if rest == "" {
		return nil, false
	}

	leading := text[:len(text)-len(strings.TrimLeft(text, " \t"))]
	indent := leading + strings.Repeat(" ", cfg.Settings.IndentSize)

	part1 := text[:split+3] + " \\"
	part2 := indent + rest

	// Bail out unless the wrap actually resolves the violation, so a
	// second format pass finds nothing left to do.
	if len(part1) > max || len(part2) > max {
		return nil, false
	}

	return []m.Line{line.WithText(part1), line.WithText(part2)}, true
}
