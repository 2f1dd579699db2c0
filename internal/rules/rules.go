// Package rules implements the style checks and fixers. Each rule is
// a pure function over a single line; cross-line state lives in the
// driver package.
package rules

import (
	"github.com/mouse-blink/shlint/internal/classify"
	"github.com/mouse-blink/shlint/internal/config"
	m "github.com/mouse-blink/shlint/internal/model"
)

// Check inspects one line and reports at most one issue, or nil.
type Check func(line m.Line, cfg *config.Config) *m.Issue

// Fix rewrites one line. The returned slice replaces the line (a wrap
// may split it in two); ok reports whether anything changed.
type Fix func(line m.Line, cfg *config.Config) ([]m.Line, bool)

// Rule pairs a rule identifier with its check or fixer.
type Rule struct {
	Name  string
	Check Check
	Fix   Fix
}

// Checks returns the lint-mode rules in reporting order. The order is
// part of the output contract: issues on the same line are reported in
// this sequence.
func Checks() []Rule {
	return []Rule{
		{Name: config.RuleBracketStyle, Check: CheckBracketStyle},
		{Name: config.RuleOperatorSpacing, Check: CheckOperatorSpacing},
		{Name: config.RuleLineLength, Check: CheckLineLength},
		{Name: config.RuleIndentation, Check: CheckIndentation},
		{Name: config.RuleQuoteVariables, Check: CheckQuoteVariables},
	}
}

// Fixers returns the format-mode rules in application order. Bracket
// style must run before operator spacing so one pass suffices: the
// bracket rewrite can introduce text the operator fixer then spaces
// correctly, never the other way around. Line wrapping runs last so it
// measures the line after all insertions.
func Fixers() []Rule {
	return []Rule{
		{Name: config.RuleBracketStyle, Fix: FixBracketStyle},
		{Name: config.RuleOperatorSpacing, Fix: FixOperatorSpacing},
		{Name: config.RuleBraceSpacing, Fix: FixBraceSpacing},
		{Name: config.RuleCommaSpacing, Fix: FixCommaSpacing},
		{Name: config.RuleLineLength, Fix: FixLineLength},
	}
}

// Skip is the gate every check and fixer runs before doing any work:
// rule disabled, line in a protected context, or operator-like text
// inside a quoted string. A rule must never report or rewrite past
// this gate.
func Skip(rule string, line m.Line, cfg *config.Config) bool {
	if !cfg.Enabled(rule) {
		return true
	}

	if classify.Line(line.Text).Protected() {
		return true
	}

	return classify.HasProtectedSpecialChars(line.Text)
}

// issue builds an Issue with the severity configured for the rule.
func issue(rule string, line m.Line, cfg *config.Config, message string) *m.Issue {
	return &m.Issue{
		Severity: cfg.SeverityFor(rule),
		Rule:     rule,
		Line:     line.Number,
		Message:  message,
	}
}
