// Package rules contains the built-in SQL style rules.
//
// Rule IDs are grouped by prefix:
//
//	KC - keyword casing
//	NM - identifier naming
//	WS - whitespace and indentation
//	AL - aliasing
//
// Each rule registers itself in its init() function; importing this package
// for side effects makes the full rule set available to the analyzer.
package rules
