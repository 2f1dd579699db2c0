// Package classify determines the lexical context of shell script
// lines so the rule engine never edits inside strings, comments,
// heredocs, or expansion forms.
//
// The package deliberately uses structural pattern checks rather than
// a full shell grammar: a line containing a protected form anywhere is
// treated as protected as a whole. That trades precision for safety —
// a fixer can never corrupt an expansion it did not fully parse. The
// rule engine only depends on this package's interface, so a real
// tokenizer could replace the patterns without touching any rule.
package classify

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/shlint/internal/model"
)

var (
	// Heredoc start: << or <<- followed by an optionally quoted
	// delimiter word.
	reHeredocStart = regexp.MustCompile("<<-?\\s*(?:'([A-Za-z_][A-Za-z0-9_]*)'|\"([A-Za-z_][A-Za-z0-9_]*)\"|([A-Za-z_][A-Za-z0-9_]*))")

	reRegexTest      = regexp.MustCompile(`\[\[[^]]*=~.*\]\]`)
	reArithmetic     = regexp.MustCompile(`\$\(\(`)
	reSubstitution   = regexp.MustCompile("\\$\\(|`")
	reExpansion      = regexp.MustCompile(`\$\{[^}]*\}`)
	reBraceCommaList = regexp.MustCompile(`\{[^{}\s]*,[^{}]*\}`)
	reBraceNumRange  = regexp.MustCompile(`\{-?[0-9]+\.\.-?[0-9]+\}`)
)

// Line assigns a LineContext to one line of text. Checks run in a
// fixed priority order and the first match wins; callers rely on that
// order (a comment mentioning <<EOF must classify as a comment).
func Line(text string) m.LineContext {
	trimmed := strings.TrimSpace(text)

	switch {
	case trimmed == "":
		return m.ContextEmpty
	case strings.HasPrefix(text, "#!"):
		return m.ContextShebang
	case strings.HasPrefix(trimmed, "#"):
		return m.ContextComment
	case reHeredocStart.MatchString(text):
		return m.ContextHeredocStart
	case reRegexTest.MatchString(text):
		return m.ContextRegex
	case reArithmetic.MatchString(text):
		return m.ContextArithmetic
	case reSubstitution.MatchString(text):
		return m.ContextSubstitution
	case reExpansion.MatchString(text):
		return m.ContextExpansion
	case reBraceCommaList.MatchString(text) || reBraceNumRange.MatchString(text):
		return m.ContextBraceExpansion
	default:
		return m.ContextNormal
	}
}
