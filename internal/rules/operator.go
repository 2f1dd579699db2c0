package rules

import (
	"strings"

	"github.com/mouse-blink/shlint/internal/config"
	m "github.com/mouse-blink/shlint/internal/model"
)

// operatorGaps maps each missing-space pattern around a logical
// operator to its spaced form. Replacement order does not matter: the
// patterns cannot produce each other.
var operatorGaps = [][2]string{
	{"]]&&", "]] &&"},
	{"&&[[", "&& [["},
	{"]]||", "]] ||"},
	{"||[[", "|| [["},
}

// CheckOperatorSpacing reports logical operators jammed against a
// double-bracket test.
func CheckOperatorSpacing(line m.Line, cfg *config.Config) *m.Issue {
	if !cfg.Settings.SpaceAroundOperators || Skip(config.RuleOperatorSpacing, line, cfg) {
		return nil
	}

	for _, gap := range operatorGaps {
		if strings.Contains(line.Text, gap[0]) {
			return issue(config.RuleOperatorSpacing, line, cfg, "missing space around && or ||")
		}
	}

	return nil
}

// FixOperatorSpacing inserts exactly one space on the missing side of
// a logical operator.
func FixOperatorSpacing(line m.Line, cfg *config.Config) ([]m.Line, bool) {
	if !cfg.Settings.SpaceAroundOperators || Skip(config.RuleOperatorSpacing, line, cfg) {
		return nil, false
	}

	text := line.Text
	for _, gap := range operatorGaps {
		text = strings.ReplaceAll(text, gap[0], gap[1])
	}

	if text == line.Text {
		return nil, false
	}

	return []m.Line{line.WithText(text)}, true
}
