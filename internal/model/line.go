// Package model contains the core data types shared across shlint.
package model

// Path represents a file system path.
type Path string

// Line is a single source line together with its 1-based position in
// the file. Lines are never mutated; fixers return a new Line value.
type Line struct {
	Text   string
	Number int
}

// WithText returns a copy of the line carrying new text at the same
// position.
func (l Line) WithText(text string) Line {
	return Line{Text: text, Number: l.Number}
}

// LineContext classifies the lexical context of a whole line.
type LineContext string

// Available LineContext values, in classification priority order.
// The order is a contract: a line matching several patterns takes the
// first one (a comment containing "<<EOF" is a comment, never a
// heredoc start).
const (
	ContextEmpty          LineContext = "empty"
	ContextShebang        LineContext = "shebang"
	ContextComment        LineContext = "comment"
	ContextHeredocStart   LineContext = "heredoc_start"
	ContextRegex          LineContext = "regex"
	ContextArithmetic     LineContext = "arithmetic"
	ContextSubstitution   LineContext = "substitution"
	ContextExpansion      LineContext = "expansion"
	ContextBraceExpansion LineContext = "brace_expansion"
	ContextNormal         LineContext = "normal"
)

// Protected reports whether a line in this context must be left
// untouched by every fixer.
func (c LineContext) Protected() bool {
	switch c {
	case ContextShebang, ContextComment, ContextHeredocStart,
		ContextRegex, ContextArithmetic, ContextSubstitution,
		ContextExpansion, ContextBraceExpansion:
		return true
	default:
		return false
	}
}

// ParseState is the cross-line state carried by the file driver while
// scanning one file. It is created per invocation and discarded at end
// of file; nothing in shlint keeps process-wide mutable state.
type ParseState struct {
	// InHeredoc is set while the scanner is inside a heredoc body.
	InHeredoc bool

	// HeredocDelimiter is the token that terminates the current
	// heredoc. Empty unless InHeredoc.
	HeredocDelimiter string

	// IndentLevel is the current block nesting depth. Never negative.
	IndentLevel int

	// Continuation buffers lines ending in a trailing backslash until
	// the logical line is complete.
	Continuation []Line
}

// EnterHeredoc records the start of a heredoc body.
func (s *ParseState) EnterHeredoc(delimiter string) {
	s.InHeredoc = true
	s.HeredocDelimiter = delimiter
}

// LeaveHeredoc clears the heredoc state.
func (s *ParseState) LeaveHeredoc() {
	s.InHeredoc = false
	s.HeredocDelimiter = ""
}

// Indent increments the nesting depth.
func (s *ParseState) Indent() {
	s.IndentLevel++
}

// Dedent decrements the nesting depth, flooring at zero so a stray
// closing token cannot drive the indent negative.
func (s *ParseState) Dedent() {
	if s.IndentLevel > 0 {
		s.IndentLevel--
	}
}
