package classify

import "strings"

// HeredocDelimiter extracts the delimiter token from a heredoc start
// line, with any surrounding quote characters stripped. Quoting
// changes expansion semantics inside the body but not the identity of
// the terminator, so "EOF", 'EOF' and EOF all yield EOF. Returns the
// empty string when the line does not start a heredoc.
func HeredocDelimiter(text string) string {
	match := reHeredocStart.FindStringSubmatch(text)
	if match == nil {
		return ""
	}

	// Capture groups: single-quoted, double-quoted, bare.
	for _, group := range match[1:] {
		if group != "" {
			return group
		}
	}

	return ""
}

// IsHeredocEnd reports whether a line terminates the heredoc opened
// with the given delimiter: the delimiter is non-empty and the line
// equals it after trimming surrounding whitespace.
func IsHeredocEnd(text, delimiter string) bool {
	return delimiter != "" && strings.TrimSpace(text) == delimiter
}
