package rules

import (
	"errors"
	"fmt"
)

// ErrUnknownRuleSet is returned when no rule set has the requested name
var ErrUnknownRuleSet = errors.New("unknown rule set")

// Registry lists the available rule sets, oldest first
type Registry struct {
	ruleSets []*RuleSet
}

// NewRegistry creates a registry from rule sets ordered oldest first
func NewRegistry(ruleSets ...*RuleSet) *Registry {
	return &Registry{ruleSets: append([]*RuleSet(nil), ruleSets...)}
}

// Get returns the rule set with the given name
func (r *Registry) Get(name string) (*RuleSet, error) {
	for _, rs := range r.ruleSets {
		if rs.Name() == name {
			return rs, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownRuleSet, name, r.Names())
}

// Select returns the named rule set, falling back to the latest one when the
// name is empty or unknown
func (r *Registry) Select(name string) *RuleSet {
	if rs, err := r.Get(name); err == nil {
		return rs
	}
	return r.Latest()
}

// Latest returns the newest rule set, or nil for an empty registry
func (r *Registry) Latest() *RuleSet {
	if len(r.ruleSets) == 0 {
		return nil
	}
	return r.ruleSets[len(r.ruleSets)-1]
}

// RuleSets returns every rule set, oldest first
func (r *Registry) RuleSets() []*RuleSet {
	return append([]*RuleSet(nil), r.ruleSets...)
}

// Names returns every version name, oldest first
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ruleSets))
	for _, rs := range r.ruleSets {
		names = append(names, rs.Name())
	}
	return names
}

var defaultRegistry = NewRegistry(
	MustNewRuleSet(V710, schemes710()),
	MustNewRuleSet(V711, schemes711()),
	MustNewRuleSet(V750, schemes750()),
)

// DefaultRegistry returns the shipped rule sets
func DefaultRegistry() *Registry {
	return defaultRegistry
}
