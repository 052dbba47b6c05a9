package lint

import (
	"strings"

	"github.com/leapstack-labs/sqlstyle/pkg/token"
)

// noqa directives suppress diagnostics for the line the comment sits on:
//
//	SELECT ifnull(a, 0) total  -- noqa
//	SELECT ifnull(a, 0) total  -- noqa: KC01,AL01
//
// A bare "noqa" suppresses every rule on that line; with a rule list only
// the named rules are suppressed.

// suppressionSet maps line number to the set of suppressed rule IDs.
// A nil set means all rules are suppressed on that line.
type suppressionSet map[int]map[string]bool

func (s suppressionSet) covers(line int, ruleID string) bool {
	ids, ok := s[line]
	if !ok {
		return false
	}
	if ids == nil {
		return true
	}
	return ids[ruleID]
}

// collectSuppressions scans comment tokens for noqa directives.
func collectSuppressions(tokens []token.Token) suppressionSet {
	set := make(suppressionSet)
	for _, tok := range tokens {
		if tok.Type != token.COMMENT {
			continue
		}
		ids, ok := parseNoqa(tok.Literal)
		if !ok {
			continue
		}
		if ids == nil {
			set[tok.Pos.Line] = nil
			continue
		}
		if existing, present := set[tok.Pos.Line]; present && existing == nil {
			continue // already fully suppressed
		}
		if set[tok.Pos.Line] == nil {
			set[tok.Pos.Line] = make(map[string]bool)
		}
		for _, id := range ids {
			set[tok.Pos.Line][id] = true
		}
	}
	return set
}

// parseNoqa extracts a noqa directive from a comment literal.
// Returns (nil, true) for a bare noqa, (ids, true) for a scoped one, and
// (nil, false) when the comment is not a directive.
func parseNoqa(comment string) ([]string, bool) {
	text := strings.TrimSpace(comment)
	text = strings.TrimPrefix(text, "--")
	text = strings.TrimPrefix(text, "/*")
	text = strings.TrimSuffix(text, "*/")
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(strings.ToLower(text), "noqa") {
		return nil, false
	}
	rest := strings.TrimSpace(text[len("noqa"):])
	if rest == "" {
		return nil, true
	}
	if !strings.HasPrefix(rest, ":") {
		return nil, false
	}

	var ids []string
	for _, id := range strings.Split(rest[1:], ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			ids = append(ids, strings.ToUpper(id))
		}
	}
	if len(ids) == 0 {
		return nil, true
	}
	return ids, true
}
