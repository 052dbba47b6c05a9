// Package config provides configuration management for the sqlstyle CLI.
//
// Configuration is loaded from (in increasing priority): built-in defaults,
// a sqlstyle.yaml file, SQLSTYLE_-prefixed environment variables, and
// command-line flags.
package config

import (
	"fmt"

	"github.com/leapstack-labs/sqlstyle/pkg/lint"
)

// RuleConfig holds per-rule configuration from the config file.
type RuleConfig struct {
	// Enabled toggles the rule. Nil means enabled.
	Enabled *bool `koanf:"enabled"`

	// Severity overrides the rule's default severity (error, warning, info, hint).
	Severity string `koanf:"severity"`

	// Parameters contains rule-specific options (e.g. case, max_length, tolerance).
	Parameters map[string]any `koanf:"parameters"`
}

// Config holds all CLI configuration options.
type Config struct {
	// Output selects the output mode: auto, text, or json.
	Output string `koanf:"output"`

	// Severity is the minimum severity to report (hint reports everything).
	Severity string `koanf:"severity"`

	// Fix enables applying safe fixes in place.
	Fix bool `koanf:"fix"`

	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`

	// Disabled contains rule IDs to disable.
	Disabled []string `koanf:"disabled"`

	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `koanf:"rules"`
}

// Default configuration values.
const (
	DefaultOutput   = "auto" // Auto-detect: TTY=color text, non-TTY=plain text
	DefaultSeverity = "hint"
)

// ToLintConfig converts the CLI configuration into a lint.Config,
// validating rule IDs and severity names.
func (c *Config) ToLintConfig() (*lint.Config, error) {
	lc := lint.NewConfig()
	for _, id := range c.Disabled {
		lc.Disable(id)
	}
	for id, rc := range c.Rules {
		if rc.Enabled != nil && !*rc.Enabled {
			lc.Disable(id)
		}
		if rc.Severity != "" {
			sev, ok := lint.ParseSeverity(rc.Severity)
			if !ok {
				return nil, &lint.ConfigError{
					Key:     "rules." + id + ".severity",
					Message: fmt.Sprintf("unknown severity %q", rc.Severity),
				}
			}
			lc.SetSeverity(id, sev)
		}
		if len(rc.Parameters) > 0 {
			lc.SetRuleOptions(id, rc.Parameters)
		}
	}
	if err := lc.Validate(); err != nil {
		return nil, err
	}
	return lc, nil
}

// MinSeverity returns the configured reporting threshold.
func (c *Config) MinSeverity() (lint.Severity, error) {
	s := c.Severity
	if s == "" {
		s = DefaultSeverity
	}
	sev, ok := lint.ParseSeverity(s)
	if !ok {
		return 0, &lint.ConfigError{Key: "severity", Message: fmt.Sprintf("unknown severity %q", s)}
	}
	return sev, nil
}
