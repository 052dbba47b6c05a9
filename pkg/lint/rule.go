package lint

import "github.com/leapstack-labs/sqlstyle/pkg/token"

// RuleDef is a data-driven rule definition.
// Rules are stateless pure functions over the token stream: all context comes
// via the Check parameters, and the output of one rule never depends on
// another's result, so any subset of rules can run in any order.
type RuleDef struct {
	ID          string    // Unique identifier, e.g., "KC01"
	Name        string    // Human-readable name, e.g., "casing.keywords"
	Group       string    // Category, e.g., "casing", "naming", "whitespace"
	Description string    // Human-readable description
	Severity    Severity  // Default severity
	Check       CheckFunc // The check function
	ConfigKeys  []string  // Configuration keys this rule accepts

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // SQL showing the anti-pattern
	GoodExample string // SQL showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc analyzes a token stream and returns diagnostics.
// The tokens slice is the full lossless stream (trivia included) and must be
// treated as read-only. The opts parameter carries rule-specific options from
// configuration.
type CheckFunc func(tokens []token.Token, opts map[string]any) []Diagnostic

// Info extracts metadata from a rule for documentation/tooling.
func (r RuleDef) Info() RuleInfo {
	return RuleInfo{
		ID:              r.ID,
		Name:            r.Name,
		Group:           r.Group,
		Description:     r.Description,
		DefaultSeverity: r.Severity,
		ConfigKeys:      r.ConfigKeys,
		Rationale:       r.Rationale,
		BadExample:      r.BadExample,
		GoodExample:     r.GoodExample,
		Fix:             r.Fix,
	}
}
