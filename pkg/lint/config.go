package lint

import "fmt"

// Config controls which rules are enabled, their severity, and their
// rule-specific options. A Config is built once per run and not mutated
// while analysis is in flight.
type Config struct {
	// DisabledRules contains rule IDs to skip
	DisabledRules map[string]bool

	// SeverityOverrides changes the default severity of rules
	SeverityOverrides map[string]Severity

	// RuleOptions holds rule-specific parameters keyed by rule ID
	RuleOptions map[string]map[string]any
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		SeverityOverrides: make(map[string]Severity),
		RuleOptions:       make(map[string]map[string]any),
	}
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	return c.DisabledRules[ruleID]
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(ruleID string, defaultSeverity Severity) Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[ruleID]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// GetRuleOptions returns the options for a rule, or nil if none are set.
func (c *Config) GetRuleOptions(ruleID string) map[string]any {
	if c == nil {
		return nil
	}
	return c.RuleOptions[ruleID]
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	c.DisabledRules[ruleID] = true
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(ruleID string, severity Severity) *Config {
	c.SeverityOverrides[ruleID] = severity
	return c
}

// SetRuleOptions sets rule-specific options.
func (c *Config) SetRuleOptions(ruleID string, opts map[string]any) *Config {
	c.RuleOptions[ruleID] = opts
	return c
}

// Validate checks every referenced rule ID against the registry.
// Rule resolution cannot proceed safely with unknown IDs, so the first
// offender fails the whole run with a *ConfigError.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	for id := range c.DisabledRules {
		if !Known(id) {
			return &ConfigError{Key: id, Message: "unknown rule id"}
		}
	}
	for id := range c.SeverityOverrides {
		if !Known(id) {
			return &ConfigError{Key: id, Message: "unknown rule id"}
		}
	}
	for id := range c.RuleOptions {
		if !Known(id) {
			return &ConfigError{Key: id, Message: "unknown rule id"}
		}
	}
	return nil
}

// ConfigError represents an invalid configuration. It is fatal for the whole
// run: no file is analyzed once one is detected.
type ConfigError struct {
	Key     string // offending configuration key or rule ID
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s: %s", e.Key, e.Message)
}
