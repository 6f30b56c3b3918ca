package lint

import (
	"slices"
	"strings"
	"sync"

	"github.com/leapstack-labs/pystyle/pkg/ast"
)

// globalRegistry is the single global registry for all lint rules.
var globalRegistry = &Registry{
	rules: make(map[Code]RuleDef),
}

// Registry stores registered lint rules for discovery.
type Registry struct {
	mu    sync.RWMutex
	rules map[Code]RuleDef // keyed by ID
}

// Register adds a rule to the global registry.
// Call this from init() functions in rule packages.
func Register(rule RuleDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules[rule.ID] = rule
}

// GetAll returns all registered rules ordered by code.
func GetAll() []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]RuleDef, 0, len(globalRegistry.rules))
	for _, rule := range globalRegistry.rules {
		rules = append(rules, rule)
	}
	sortRules(rules)
	return rules
}

// GetByID returns a rule by its code.
func GetByID(id Code) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	rule, ok := globalRegistry.rules[id]
	return rule, ok
}

// GetByGroup returns all rules in a specific group ordered by code.
func GetByGroup(group string) []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	var rules []RuleDef
	for _, rule := range globalRegistry.rules {
		if rule.Group == group {
			rules = append(rules, rule)
		}
	}
	sortRules(rules)
	return rules
}

// LineRules returns the registered line rules ordered by code.
func LineRules() []RuleDef {
	var rules []RuleDef
	for _, rule := range GetAll() {
		if rule.CheckLine != nil {
			rules = append(rules, rule)
		}
	}
	return rules
}

// TreeRules returns the registered tree rules indexed by the node kinds they
// inspect. Rules for the same kind are ordered by code.
func TreeRules() map[ast.NodeKind][]RuleDef {
	byKind := make(map[ast.NodeKind][]RuleDef)
	for _, rule := range GetAll() {
		if rule.CheckTree == nil {
			continue
		}
		for _, kind := range rule.Kinds {
			byKind[kind] = append(byKind[kind], rule)
		}
	}
	return byKind
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}

func sortRules(rules []RuleDef) {
	slices.SortFunc(rules, func(a, b RuleDef) int {
		return strings.Compare(string(a.ID), string(b.ID))
	})
}
