package lint

import (
	"sort"

	"github.com/leapstack-labs/sqlstyle/pkg/token"
)

// Analyzer runs lint rules against a token stream.
type Analyzer struct {
	config *Config
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{config: config}
}

// Analyze runs all active rules against the token stream and returns the
// diagnostics sorted by (line, column), ties broken by rule ID.
// Diagnostics on lines covered by a noqa directive are dropped.
func (a *Analyzer) Analyze(tokens []token.Token) []Diagnostic {
	if len(tokens) == 0 {
		return nil
	}

	suppressions := collectSuppressions(tokens)

	var diagnostics []Diagnostic
	for _, rule := range Resolve(a.config) {
		opts := a.config.GetRuleOptions(rule.ID)
		diags := rule.Check(tokens, opts)

		for i := range diags {
			diags[i].Severity = a.config.GetSeverity(rule.ID, diags[i].Severity)
		}

		for _, d := range diags {
			if suppressions.covers(d.Pos.Line, d.RuleID) {
				continue
			}
			diagnostics = append(diagnostics, d)
		}
	}

	Sort(diagnostics)
	return diagnostics
}

// Sort orders diagnostics by ascending (line, column), ties resolved by
// rule ID lexical order.
func Sort(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].Pos.Line != diags[j].Pos.Line {
			return diags[i].Pos.Line < diags[j].Pos.Line
		}
		if diags[i].Pos.Column != diags[j].Pos.Column {
			return diags[i].Pos.Column < diags[j].Pos.Column
		}
		return diags[i].RuleID < diags[j].RuleID
	})
}

// WorstSeverity returns the most severe level present, or ok=false when the
// list is empty.
func WorstSeverity(diags []Diagnostic) (Severity, bool) {
	if len(diags) == 0 {
		return SeverityHint, false
	}
	worst := diags[0].Severity
	for _, d := range diags[1:] {
		if d.Severity < worst {
			worst = d.Severity
		}
	}
	return worst, true
}
