package classify

// quoteScanner is the single-pass quote automaton shared by the
// position scan and the protected-character scan. It tracks at most
// one open quote kind and a one-step escape flag.
type quoteScanner struct {
	quote   byte
	escaped bool
}

// step consumes one character and updates the automaton.
func (q *quoteScanner) step(c byte) {
	if q.escaped {
		q.escaped = false

		return
	}

	switch c {
	case '\\':
		q.escaped = true
	case '"', '\'':
		switch q.quote {
		case 0:
			q.quote = c
		case c:
			q.quote = 0
		}
	}
}

// inString reports whether the scanner is currently inside an open
// quote.
func (q *quoteScanner) inString() bool {
	return q.quote != 0
}

// InString scans text from the start and reports whether position pos
// lands inside an open single or double quote. An unterminated quote
// at end of line is not an error: the scan simply reports the open
// state it reached. Quote scanning is line-local; multi-line strings
// only occur in heredocs, which are tracked separately by the driver.
func InString(text string, pos int) bool {
	if pos > len(text) {
		pos = len(text)
	}

	var scan quoteScanner
	for i := 0; i < pos; i++ {
		scan.step(text[i])
	}

	return scan.inString()
}

// HasProtectedSpecialChars reports whether a bracket-open character or
// a logical operator token occurs inside an open quote anywhere on the
// line. Fixers use this as a final guard so operator-like text that is
// really string content is never rewritten.
func HasProtectedSpecialChars(text string) bool {
	var scan quoteScanner

	for i := 0; i < len(text); i++ {
		c := text[i]
		if scan.inString() && !scan.escaped {
			if c == '[' {
				return true
			}

			if i+1 < len(text) && (c == '&' || c == '|') && text[i+1] == c {
				return true
			}
		}

		scan.step(c)
	}

	return false
}
