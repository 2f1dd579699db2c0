package rules

import (
	"testing"

	"github.com/mouse-blink/shlint/internal/config"
	m "github.com/mouse-blink/shlint/internal/model"
)

func TestCheckIndentation(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantIssue bool
	}{
		{
			name:      "leading tab",
			text:      "\techo hi",
			wantIssue: true,
		},
		{
			name:      "tab after spaces",
			text:      "  \techo hi",
			wantIssue: true,
		},
		{
			name:      "spaces only",
			text:      "    echo hi",
			wantIssue: false,
		},
		{
			name:      "no indentation",
			text:      "echo hi",
			wantIssue: false,
		},
		{
			name:      "tab inside the command is not indentation",
			text:      "echo a\tb",
			wantIssue: false,
		},
		{
			name:      "tab in a comment is protected",
			text:      "\t# a note",
			wantIssue: false,
		},
	}

	cfg := config.Default()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := CheckIndentation(m.Line{Text: tt.text, Number: 2}, cfg)
			if (issue != nil) != tt.wantIssue {
				t.Errorf("CheckIndentation(%q) issue = %v, want issue %v", tt.text, issue, tt.wantIssue)
			}

			if issue != nil && issue.Rule != config.RuleIndentation {
				t.Errorf("issue rule = %q, want %q", issue.Rule, config.RuleIndentation)
			}
		})
	}
}

func TestFixIndentation(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name     string
		text     string
		level    int
		expected string
		changed  bool
	}{
		{
			name:     "add missing indent",
			text:     "echo hi",
			level:    1,
			expected: "    echo hi",
			changed:  true,
		},
		{
			name:     "replace tab indent",
			text:     "\techo hi",
			level:    1,
			expected: "    echo hi",
			changed:  true,
		},
		{
			name:     "deeper nesting",
			text:     "  echo hi",
			level:    2,
			expected: "        echo hi",
			changed:  true,
		},
		{
			name:    "already correct",
			text:    "    echo hi",
			level:   1,
			changed: false,
		},
		{
			name:    "blank line untouched",
			text:    "   ",
			level:   2,
			changed: false,
		},
		{
			name:    "comment untouched",
			text:    "# note",
			level:   1,
			changed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixed, changed := FixIndentation(m.Line{Text: tt.text, Number: 1}, tt.level, cfg)
			if changed != tt.changed {
				t.Fatalf("FixIndentation(%q, %d) changed = %v, want %v", tt.text, tt.level, changed, tt.changed)
			}

			if changed && fixed.Text != tt.expected {
				t.Errorf("FixIndentation(%q, %d) = %q, want %q", tt.text, tt.level, fixed.Text, tt.expected)
			}
		})
	}
}
