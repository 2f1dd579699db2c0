package rules

import (
	"fmt"
	"regexp"

	"github.com/mouse-blink/shlint/internal/classify"
	"github.com/mouse-blink/shlint/internal/config"
	m "github.com/mouse-blink/shlint/internal/model"
)

// A bare variable assignment: name=$other with no quotes.
var reBareAssignment = regexp.MustCompile(`(^|\s)([A-Za-z_][A-Za-z0-9_]*)=\$([A-Za-z_][A-Za-z0-9_]*)(\s|$)`)

// CheckQuoteVariables reports assignments of an unquoted variable.
// This rule is informational only and is never auto-fixed: quoting
// changes word splitting, which is not a rewrite a formatter should
// make on its own.
func CheckQuoteVariables(line m.Line, cfg *config.Config) *m.Issue {
	if !cfg.Settings.QuoteVariables || Skip(config.RuleQuoteVariables, line, cfg) {
		return nil
	}

	match := reBareAssignment.FindStringSubmatchIndex(line.Text)
	if match == nil || classify.InString(line.Text, match[0]) {
		return nil
	}

	name := line.Text[match[4]:match[5]]
	value := line.Text[match[6]:match[7]]

	return issue(config.RuleQuoteVariables, line, cfg,
		fmt.Sprintf("unquoted variable: %s=$%s should be %s=\"$%s\"", name, value, name, value))
}
