package rules

import (
	"strings"

	"github.com/mouse-blink/shlint/internal/classify"
	"github.com/mouse-blink/shlint/internal/config"
	m "github.com/mouse-blink/shlint/internal/model"
)

// bracePatterns are the tokens that need a space inserted before the
// opening brace. Format-only: these never produce lint issues.
var bracePatterns = []string{"){", "then{", "do{"}

// FixBraceSpacing inserts a space before { in ){, then{ and do{.
// Occurrences inside quoted strings are left alone.
func FixBraceSpacing(line m.Line, cfg *config.Config) ([]m.Line, bool) {
	if !cfg.Settings.SpaceBeforeBrace || Skip(config.RuleBraceSpacing, line, cfg) {
		return nil, false
	}

	text := line.Text

	var out strings.Builder

	changed := false

	for i := 0; i < len(text); {
		pattern := braceMatchAt(text, i)
		if pattern != "" && !classify.InString(text, i) {
			out.WriteString(pattern[:len(pattern)-1])
			out.WriteString(" {")
			i += len(pattern)
			changed = true

			continue
		}

		out.WriteByte(text[i])
		i++
	}

	if !changed {
		return nil, false
	}

	return []m.Line{line.WithText(out.String())}, true
}

func braceMatchAt(text string, i int) string {
	for _, pattern := range bracePatterns {
		if strings.HasPrefix(text[i:], pattern) {
			return pattern
		}
	}

	return ""
}

// FixCommaSpacing inserts one space after a comma directly followed by
// a non-space character. Brace expansions never reach this fixer: the
// classifier marks them protected and the shared gate skips the line.
func FixCommaSpacing(line m.Line, cfg *config.Config) ([]m.Line, bool) {
	if !cfg.Settings.SpaceAfterComma || Skip(config.RuleCommaSpacing, line, cfg) {
		return nil, false
	}

	text := line.Text

	var out strings.Builder

	changed := false

	for i := 0; i < len(text); i++ {
		out.WriteByte(text[i])

		if text[i] == ',' && i+1 < len(text) && text[i+1] != ' ' && text[i+1] != '\t' &&
			!classify.InString(text, i) {
			out.WriteByte(' ')

			changed = true
		}
	}

	if !changed {
		return nil, false
	}

	return []m.Line{line.WithText(out.String())}, true
}
