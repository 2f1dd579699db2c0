package driver

import (
	"reflect"
	"testing"

	"github.com/mouse-blink/shlint/internal/config"
	m "github.com/mouse-blink/shlint/internal/model"
)

func TestFormatBracketNormalization(t *testing.T) {
	p := NewProcessor(config.Default())

	out, fixes := p.Format([]string{`if [ -f "x" ]; then`, `    echo ok`, `fi`})

	expected := []string{`if [[ -f "x" ]]; then`, `    echo ok`, `fi`}
	if !reflect.DeepEqual(out, expected) {
		t.Errorf("Format = %q, want %q", out, expected)
	}

	if fixes == 0 {
		t.Error("expected at least one fix")
	}
}

func TestFormatHeredocInviolability(t *testing.T) {
	body := []string{
		"cat <<EOF",
		"\t[ raw ]&&stuff",
		"  text with trailing spaces   ",
		"test -f x; then",
		"EOF",
		"echo after",
	}

	p := NewProcessor(config.Default())

	out, _ := p.Format(body)

	for i := 0; i < 5; i++ {
		if out[i] != body[i] {
			t.Errorf("heredoc line %d changed: %q -> %q", i+1, body[i], out[i])
		}
	}
}

func TestFormatHeredocDashForm(t *testing.T) {
	body := []string{
		"cat <<-END",
		"\t[ a ]&&[ b ]",
		"END",
	}

	p := NewProcessor(config.Default())

	out, fixes := p.Format(body)
	if !reflect.DeepEqual(out, body) {
		t.Errorf("Format = %q, want untouched %q", out, body)
	}

	if fixes != 0 {
		t.Errorf("fixes = %d, want 0", fixes)
	}
}

func TestFormatCommentInviolability(t *testing.T) {
	lines := []string{
		"# if [ -f x ]; then",
		"#\ttabbed comment",
		"    # [[ a ]]&&[[ b ]]",
	}

	p := NewProcessor(config.Default())

	out, fixes := p.Format(lines)
	if !reflect.DeepEqual(out, lines) {
		t.Errorf("comments changed: %q", out)
	}

	if fixes != 0 {
		t.Errorf("fixes = %d, want 0", fixes)
	}
}

func TestFormatIndentation(t *testing.T) {
	input := []string{
		"deploy() {",
		"echo start",
		"if true; then",
		"echo nested",
		"fi",
		"}",
	}
	expected := []string{
		"deploy() {",
		"    echo start",
		"    if true; then",
		"        echo nested",
		"    fi",
		"}",
	}

	p := NewProcessor(config.Default())

	out, _ := p.Format(input)
	if !reflect.DeepEqual(out, expected) {
		t.Errorf("Format = %q, want %q", out, expected)
	}
}

func TestFormatIndentationCaseBlock(t *testing.T) {
	input := []string{
		"case $1 in",
		"esac",
		"echo done",
	}

	p := NewProcessor(config.Default())

	out, _ := p.Format(input)

	// esac dedents before processing; the level never goes negative.
	if out[2] != "echo done" {
		t.Errorf("line after esac = %q, want %q", out[2], "echo done")
	}
}

func TestFormatDuplicatePipeRepair(t *testing.T) {
	input := []string{
		`cat data.txt |\`,
		"| grep foo",
	}

	p := NewProcessor(config.Default())

	out, fixes := p.Format(input)

	expected := []string{"cat data.txt | grep foo"}
	if !reflect.DeepEqual(out, expected) {
		t.Errorf("Format = %q, want %q", out, expected)
	}

	if fixes == 0 {
		t.Error("expected the join to count as a fix")
	}
}

func TestFormatContinuationPreservesBreaks(t *testing.T) {
	input := []string{
		`echo one && \`,
		"    echo two",
	}

	p := NewProcessor(config.Default())

	out, fixes := p.Format(input)
	if !reflect.DeepEqual(out, input) {
		t.Errorf("Format = %q, want untouched %q", out, input)
	}

	if fixes != 0 {
		t.Errorf("fixes = %d, want 0", fixes)
	}
}

func TestFormatIdempotence(t *testing.T) {
	input := []string{
		"#!/bin/bash",
		"# setup script",
		"",
		"deploy() {",
		"echo start",
		`if [ -f "$1" ]; then`,
		"echo found",
		"fi",
		"cat <<EOF",
		"\t[ raw ]&&stuff",
		"EOF",
		"}",
		"[[ -f a ]]&&[[ -f b ]]",
		`cat data.txt |\`,
		"| grep foo",
	}

	p := NewProcessor(config.Default())

	once, _ := p.Format(input)
	twice, fixes := NewProcessor(config.Default()).Format(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("formatting is not idempotent:\nfirst:  %q\nsecond: %q", once, twice)
	}

	if fixes != 0 {
		t.Errorf("second pass reported %d fixes, want 0", fixes)
	}
}

func TestLintIssueOrdering(t *testing.T) {
	input := []string{
		"#!/bin/bash",
		"if [ -f x ]; then",
		"\techo hi",
		"fi",
		"VAR=$foo",
	}

	p := NewProcessor(config.Default())

	issues := p.Lint(input)
	if len(issues) != 3 {
		t.Fatalf("got %d issues, want 3: %+v", len(issues), issues)
	}

	expected := []struct {
		line int
		rule string
	}{
		{2, config.RuleBracketStyle},
		{3, config.RuleIndentation},
		{5, config.RuleQuoteVariables},
	}

	for i, want := range expected {
		if issues[i].Line != want.line || issues[i].Rule != want.rule {
			t.Errorf("issue %d = line %d rule %q, want line %d rule %q",
				i, issues[i].Line, issues[i].Rule, want.line, want.rule)
		}
	}
}

func TestLintHeredocBodySkipped(t *testing.T) {
	input := []string{
		"cat <<EOF",
		"[ x ]&&[ y ]",
		"\ttabbed",
		"EOF",
	}

	p := NewProcessor(config.Default())

	if issues := p.Lint(input); len(issues) != 0 {
		t.Errorf("heredoc body raised issues: %+v", issues)
	}
}

func TestLintCommentWithHeredocMarker(t *testing.T) {
	input := []string{
		"# use <<EOF for heredocs",
		"[ -f x ] && echo ok",
	}

	p := NewProcessor(config.Default())

	issues := p.Lint(input)

	// The comment must not open heredoc state; line 2 is still checked.
	if len(issues) != 1 || issues[0].Line != 2 {
		t.Errorf("issues = %+v, want exactly one on line 2", issues)
	}
}

func TestLintMultipleIssuesOnOneLineFollowRuleOrder(t *testing.T) {
	p := NewProcessor(config.Default())

	issues := p.Lint([]string{"[[ -f a ]]&&[ -f b ]"})
	if len(issues) < 2 {
		t.Fatalf("got %d issues, want at least 2: %+v", len(issues), issues)
	}

	if issues[0].Rule != config.RuleBracketStyle || issues[1].Rule != config.RuleOperatorSpacing {
		t.Errorf("rule order = %q, %q; want bracket_style then operator_spacing",
			issues[0].Rule, issues[1].Rule)
	}
}

func TestParse(t *testing.T) {
	p := NewProcessor(config.Default())

	parsed := p.Parse([]string{
		"#!/bin/bash",
		"",
		"echo hello world",
	})

	if len(parsed) != 3 {
		t.Fatalf("got %d parsed lines, want 3", len(parsed))
	}

	if parsed[0].Context != m.ContextShebang || parsed[0].Number != 1 {
		t.Errorf("line 1 = %+v", parsed[0])
	}

	if parsed[1].Context != m.ContextEmpty {
		t.Errorf("line 2 context = %v, want empty", parsed[1].Context)
	}

	if !reflect.DeepEqual(parsed[2].Tokens, []string{"echo", "hello", "world"}) {
		t.Errorf("line 3 tokens = %v", parsed[2].Tokens)
	}
}
