package model

// FileResult holds the outcome of processing a single script.
type FileResult struct {
	Path   Path
	Issues []Issue
	// Fixes counts the lines rewritten in format mode.
	Fixes int
	// Err records an I/O-class failure; lint issues never appear here.
	Err error
}

// HasErrors reports whether any error-severity issue was found.
func (r FileResult) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}

	return false
}

// ParsedLine is one entry of the debug parse dump: a line number, the
// context the classifier assigned, and the whitespace-split tokens.
type ParsedLine struct {
	Number  int
	Context LineContext
	Tokens  []string
}
