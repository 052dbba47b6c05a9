// Package lint provides the rule registry, configuration, and analyzer for
// SQL style checking.
//
// Rules are data-driven RuleDef values registered from init() functions in
// rule packages (see pkg/lint/rules). Each rule is a stateless pure function
// over an immutable token stream; the analyzer runs the active rules in
// registration order and returns position-sorted diagnostics.
package lint
