package model

import "strings"

// Severity indicates the importance of a lint issue.
type Severity int

// Severity levels, ordered most to least severe.
const (
	// SeverityError flips the process exit status.
	SeverityError Severity = iota
	// SeverityWarning should be reviewed but never fails a run.
	SeverityWarning
	// SeverityInfo is informational feedback only.
	SeverityInfo
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a string to a Severity. Returns the severity
// and true if valid, or SeverityWarning and false otherwise.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, true
	case "warning":
		return SeverityWarning, true
	case "info":
		return SeverityInfo, true
	default:
		return SeverityWarning, false
	}
}

// Issue is a single style violation found in a file. Issues are data,
// not errors: only their severity decides whether a run fails.
type Issue struct {
	Severity Severity
	Rule     string
	Line     int
	Message  string
}
