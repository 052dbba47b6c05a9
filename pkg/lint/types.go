package lint

import "github.com/leapstack-labs/sqlstyle/pkg/token"

// Diagnostic represents a single style violation.
type Diagnostic struct {
	RuleID   string
	Severity Severity
	Message  string
	Pos      token.Position
	EndPos   token.Position // end of the problematic range
	Fixes    []Fix          // optional suggested fixes
}

// Fix represents a suggested code fix.
//
// Safe fixes are unambiguous token-for-token substitutions (keyword recasing,
// trailing whitespace removal) that never change the token count or the
// meaning of the statement; only these are applied automatically. Unsafe
// fixes are surfaced as suggestions and left to the author.
type Fix struct {
	Description string
	Safe        bool
	TextEdits   []TextEdit
}

// TextEdit represents a text replacement over a source span.
type TextEdit struct {
	Pos     token.Position
	EndPos  token.Position
	NewText string
}

// RuleInfo provides metadata about a rule for documentation/tooling.
type RuleInfo struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Group           string   `json:"group"`
	Description     string   `json:"description"`
	DefaultSeverity Severity `json:"default_severity"`
	ConfigKeys      []string `json:"config_keys,omitempty"`

	// Documentation fields
	Rationale   string `json:"rationale,omitempty"`
	BadExample  string `json:"bad_example,omitempty"`
	GoodExample string `json:"good_example,omitempty"`
	Fix         string `json:"fix,omitempty"`
}
