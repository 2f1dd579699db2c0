package rules

import (
	"strings"

	"github.com/mouse-blink/shlint/internal/config"
	m "github.com/mouse-blink/shlint/internal/model"
)

// CheckIndentation reports tab characters in leading whitespace. The
// check never rewrites anything; reindentation is a separate step
// driven by the file driver, which owns the nesting depth.
func CheckIndentation(line m.Line, cfg *config.Config) *m.Issue {
	if Skip(config.RuleIndentation, line, cfg) {
		return nil
	}

	if strings.ContainsRune(leadingWhitespace(line.Text), '\t') {
		return issue(config.RuleIndentation, line, cfg, "tab character in indentation")
	}

	return nil
}

// FixIndentation replaces the leading whitespace of a line with
// indentLevel*IndentSize spaces. The driver calls this only outside
// heredoc bodies and outside continuation groups, where the tracked
// nesting depth is trustworthy.
func FixIndentation(line m.Line, indentLevel int, cfg *config.Config) (m.Line, bool) {
	if !cfg.Settings.UseSpaces || Skip(config.RuleIndentation, line, cfg) {
		return line, false
	}

	trimmed := strings.TrimLeft(line.Text, " \t")
	if trimmed == "" {
		return line, false
	}

	want := strings.Repeat(" ", indentLevel*cfg.Settings.IndentSize)
	if line.Text == want+trimmed {
		return line, false
	}

	return line.WithText(want + trimmed), true
}

func leadingWhitespace(text string) string {
	return text[:len(text)-len(strings.TrimLeft(text, " \t"))]
}
