package lint

import "sync"

// globalRegistry is the single global registry for all lint rules.
var globalRegistry = &Registry{
	byID: make(map[string]int),
}

// Registry stores registered lint rules for discovery.
// Registration order is preserved: resolution always yields rules in the
// order their init() functions registered them, so output is reproducible
// across runs given identical input and configuration.
type Registry struct {
	mu    sync.RWMutex
	rules []RuleDef
	byID  map[string]int // rule ID -> index into rules
}

// Register adds a rule to the global registry.
// Call this from init() functions in rule packages. Re-registering an ID
// replaces the earlier definition in place, keeping its position.
func Register(rule RuleDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	if i, ok := globalRegistry.byID[rule.ID]; ok {
		globalRegistry.rules[i] = rule
		return
	}
	globalRegistry.byID[rule.ID] = len(globalRegistry.rules)
	globalRegistry.rules = append(globalRegistry.rules, rule)
}

// All returns all registered rules in registration order.
func All() []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	out := make([]RuleDef, len(globalRegistry.rules))
	copy(out, globalRegistry.rules)
	return out
}

// Get returns a rule by its ID.
func Get(id string) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	i, ok := globalRegistry.byID[id]
	if !ok {
		return RuleDef{}, false
	}
	return globalRegistry.rules[i], true
}

// Known returns true if a rule with the given ID is registered.
func Known(id string) bool {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	_, ok := globalRegistry.byID[id]
	return ok
}

// ByGroup returns all rules in a specific group, in registration order.
func ByGroup(group string) []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	var rules []RuleDef
	for _, rule := range globalRegistry.rules {
		if rule.Group == group {
			rules = append(rules, rule)
		}
	}
	return rules
}

// Resolve returns the active rules for the given configuration, in
// registration order.
func Resolve(cfg *Config) []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	var rules []RuleDef
	for _, rule := range globalRegistry.rules {
		if cfg.IsDisabled(rule.ID) {
			continue
		}
		rules = append(rules, rule)
	}
	return rules
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}
