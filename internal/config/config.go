// Package config resolves the rule configuration once at startup and
// exposes it as an immutable value passed to every check and fixer.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/shlint/internal/model"
)

// Rule identifiers as they appear in configuration files and reports.
const (
	RuleBracketStyle    = "bracket_style"
	RuleOperatorSpacing = "operator_spacing"
	RuleLineLength      = "line_length"
	RuleIndentation     = "spacing_issues"
	RuleQuoteVariables  = "quote_variables"
	RuleBraceSpacing    = "brace_spacing"
	RuleCommaSpacing    = "comma_spacing"
)

// Settings holds the numeric and boolean style knobs consumed
// read-only by every rule.
type Settings struct {
	MaxLineLength        int  `yaml:"max_line_length"`
	IndentSize           int  `yaml:"indent_size"`
	UseSpaces            bool `yaml:"use_spaces"`
	UseDoubleBrackets    bool `yaml:"use_double_brackets"`
	SpaceAroundOperators bool `yaml:"space_around_operators"`
	SpaceAfterComma      bool `yaml:"space_after_comma"`
	SpaceBeforeBrace     bool `yaml:"space_before_brace"`
	QuoteVariables       bool `yaml:"quote_variables"`
}

// RuleSetting is the per-rule enabled flag and severity override.
type RuleSetting struct {
	Enabled  *bool  `yaml:"enabled"`
	Severity string `yaml:"severity"`
}

// Config is the resolved configuration. Construct it with Default or
// Load; code that mutates Rules afterwards must call Resolve again.
type Config struct {
	Settings Settings               `yaml:"settings"`
	Rules    map[string]RuleSetting `yaml:"rules"`

	severities map[string]m.Severity
	disabled   map[string]bool
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{
		Settings: Settings{
			MaxLineLength:        100,
			IndentSize:           4,
			UseSpaces:            true,
			UseDoubleBrackets:    true,
			SpaceAroundOperators: true,
			SpaceAfterComma:      true,
			SpaceBeforeBrace:     true,
			QuoteVariables:       true,
		},
		Rules: map[string]RuleSetting{},
	}
	cfg.Resolve()

	return cfg
}

// Load reads a YAML configuration file and merges it over the
// defaults. Unknown keys are ignored; absent keys keep their default
// values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.Resolve()

	return cfg, nil
}

// defaultSeverities maps each rule to its severity when the
// configuration does not override it.
var defaultSeverities = map[string]m.Severity{
	RuleBracketStyle:    m.SeverityWarning,
	RuleOperatorSpacing: m.SeverityWarning,
	RuleLineLength:      m.SeverityWarning,
	RuleIndentation:     m.SeverityWarning,
	RuleQuoteVariables:  m.SeverityInfo,
	RuleBraceSpacing:    m.SeverityInfo,
	RuleCommaSpacing:    m.SeverityInfo,
}

// Resolve folds the raw rule table into lookup maps so severity and
// enablement are decided once, not on every line.
func (c *Config) Resolve() {
	c.severities = make(map[string]m.Severity, len(defaultSeverities))
	c.disabled = make(map[string]bool)

	for rule, severity := range defaultSeverities {
		c.severities[rule] = severity
	}

	for rule, setting := range c.Rules {
		if setting.Enabled != nil && !*setting.Enabled {
			c.disabled[rule] = true
		}

		if setting.Severity != "" {
			if severity, ok := m.ParseSeverity(setting.Severity); ok {
				c.severities[rule] = severity
			}
		}
	}
}

// Enabled reports whether a rule should run.
func (c *Config) Enabled(rule string) bool {
	return !c.disabled[rule]
}

// SeverityFor returns the severity configured for a rule, defaulting
// to warning for rules the table does not know.
func (c *Config) SeverityFor(rule string) m.Severity {
	if severity, ok := c.severities[rule]; ok {
		return severity
	}

	return m.SeverityWarning
}
