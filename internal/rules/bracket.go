package rules

import (
	"regexp"

	"github.com/mouse-blink/shlint/internal/classify"
	"github.com/mouse-blink/shlint/internal/config"
	m "github.com/mouse-blink/shlint/internal/model"
)

var (
	// A single-bracket test [ expr ] that is not part of [[ ]]. The
	// guards on both sides keep the pattern from re-matching its own
	// [[ ]] output, which is what makes the fixer idempotent.
	reSingleBracketTest = regexp.MustCompile(`(^|[^\[])\[\s+([^\[\]]+?)\s+\](?:([^\]])|$)`)

	// A test command invocation terminated by ; then or ; do.
	reTestCommand = regexp.MustCompile(`\btest\s+([^;]+?)\s*;\s*(then|do)\b`)
)

// CheckBracketStyle reports single-bracket tests and test command
// invocations when double brackets are preferred.
func CheckBracketStyle(line m.Line, cfg *config.Config) *m.Issue {
	if !cfg.Settings.UseDoubleBrackets || Skip(config.RuleBracketStyle, line, cfg) {
		return nil
	}

	if loc := reSingleBracketTest.FindStringIndex(line.Text); loc != nil && !classify.InString(line.Text, loc[0]) {
		return issue(config.RuleBracketStyle, line, cfg, "use [[ ]] instead of [ ] for tests")
	}

	if loc := reTestCommand.FindStringIndex(line.Text); loc != nil && !classify.InString(line.Text, loc[0]) {
		return issue(config.RuleBracketStyle, line, cfg, "use [[ ]] instead of the test command")
	}

	return nil
}

// FixBracketStyle rewrites [ expr ] and "test expr; then|do" to the
// [[ ]] form.
func FixBracketStyle(line m.Line, cfg *config.Config) ([]m.Line, bool) {
	if !cfg.Settings.UseDoubleBrackets || Skip(config.RuleBracketStyle, line, cfg) {
		return nil, false
	}

	text := line.Text

	if loc := reSingleBracketTest.FindStringIndex(text); loc != nil && !classify.InString(text, loc[0]) {
		text = reSingleBracketTest.ReplaceAllString(text, "${1}[[ ${2} ]]${3}")
	}

	if loc := reTestCommand.FindStringIndex(text); loc != nil && !classify.InString(text, loc[0]) {
		text = reTestCommand.ReplaceAllString(text, "[[ ${1} ]]; ${2}")
	}

	if text == line.Text {
		return nil, false
	}

	return []m.Line{line.WithText(text)}, true
}
