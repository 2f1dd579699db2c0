package driver

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/shlint/internal/model"
)

// reDoubledPipe finds a single pipe followed by another single pipe
// with only whitespace between them. The guards on both sides keep it
// away from the legitimate || operator.
var reDoubledPipe = regexp.MustCompile(`(^|[^|])\|\s+\|($|[^|])`)

// collapseDuplicatePipe inspects a completed continuation group for
// the narrow duplicate-pipe defect: a pipe at the end of one
// continuation line immediately followed by a pipe at the start of the
// next, or two single pipes adjacent once the group is joined. When
// found, the group is joined into one logical line with the doubled
// operator collapsed, ready to be reprocessed as a single line.
//
// The heuristic is intentionally this narrow. Duplicate operators
// separated across more than two lines, or hidden behind other tokens,
// are out of scope: multiline command parsing is a documented
// limitation, not something this repair tries to grow into.
func collapseDuplicatePipe(group []m.Line) (m.Line, bool) {
	if len(group) < 2 {
		return m.Line{}, false
	}

	defect := false

	for i := 0; i < len(group)-1 && !defect; i++ {
		defect = endsWithSinglePipe(group[i].Text) && startsWithSinglePipe(group[i+1].Text)
	}

	joined := joinContinuation(group)
	if !defect && !reDoubledPipe.MatchString(joined) {
		return m.Line{}, false
	}

	collapsed := reDoubledPipe.ReplaceAllString(joined, "${1}|${2}")

	return m.Line{Text: collapsed, Number: group[0].Number}, true
}

// joinContinuation strips each line's trailing backslash and joins the
// group into one logical line with single spaces at the seams.
func joinContinuation(group []m.Line) string {
	parts := make([]string, 0, len(group))

	for i, line := range group {
		text := strings.TrimRight(line.Text, " \t")
		text = strings.TrimSuffix(text, "\\")
		text = strings.TrimRight(text, " \t")

		if i > 0 {
			text = strings.TrimLeft(text, " \t")
		}

		if text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, " ")
}

func endsWithSinglePipe(text string) bool {
	text = strings.TrimRight(text, " \t")
	text = strings.TrimSuffix(text, "\\")
	text = strings.TrimRight(text, " \t")

	return strings.HasSuffix(text, "|") && !strings.HasSuffix(text, "||")
}

func startsWithSinglePipe(text string) bool {
	text = strings.TrimLeft(text, " \t")

	return strings.HasPrefix(text, "|") && !strings.HasPrefix(text, "||")
}
