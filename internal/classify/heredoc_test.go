package classify

import "testing"

func TestHeredocDelimiter(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "bare delimiter",
			text:     "cat <<EOF",
			expected: "EOF",
		},
		{
			name:     "dash form",
			text:     "cat <<-END",
			expected: "END",
		},
		{
			name:     "single quoted delimiter",
			text:     "cat <<'STOP'",
			expected: "STOP",
		},
		{
			name:     "double quoted delimiter",
			text:     `cat <<"DONE"`,
			expected: "DONE",
		},
		{
			name:     "space before delimiter",
			text:     "cat << EOF",
			expected: "EOF",
		},
		{
			name:     "mixed case delimiter",
			text:     "cat <<Marker",
			expected: "Marker",
		},
		{
			name:     "redirect into file while starting heredoc",
			text:     "cat <<EOF > out.txt",
			expected: "EOF",
		},
		{
			name:     "no heredoc",
			text:     "echo hello",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HeredocDelimiter(tt.text); got != tt.expected {
				t.Errorf("HeredocDelimiter(%q) = %q, want %q", tt.text, got, tt.expected)
			}
		})
	}
}

func TestIsHeredocEnd(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		delimiter string
		expected  bool
	}{
		{
			name:      "exact match",
			text:      "EOF",
			delimiter: "EOF",
			expected:  true,
		},
		{
			name:      "surrounding whitespace trimmed",
			text:      "  EOF  ",
			delimiter: "EOF",
			expected:  true,
		},
		{
			name:      "different token",
			text:      "END",
			delimiter: "EOF",
			expected:  false,
		},
		{
			name:      "delimiter embedded in text",
			text:      "echo EOF",
			delimiter: "EOF",
			expected:  false,
		},
		{
			name:      "empty delimiter never matches",
			text:      "",
			delimiter: "",
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHeredocEnd(tt.text, tt.delimiter); got != tt.expected {
				t.Errorf("IsHeredocEnd(%q, %q) = %v, want %v", tt.text, tt.delimiter, got, tt.expected)
			}
		})
	}
}
