package rules

import (
	"fmt"
	"maps"

	"github.com/napolitain/ogame-economy/internal/models"
)

// Schemes is the full formula bundle of a rule set version
type Schemes struct {
	Costs         map[models.UpgradeType]CostScheme
	Colony        CostScheme
	Production    []ProductionScheme
	EnergyBonuses EnergyBonuses
}

// Clone copies the bundle so a later version can replace entries without
// touching its predecessor
func (s Schemes) Clone() Schemes {
	return Schemes{
		Costs:         maps.Clone(s.Costs),
		Colony:        s.Colony,
		Production:    append([]ProductionScheme(nil), s.Production...),
		EnergyBonuses: s.EnergyBonuses,
	}
}

// ProductionScheme returns the production scheme with the given name
func (s Schemes) ProductionScheme(name string) (ProductionScheme, bool) {
	for _, p := range s.Production {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// ReplaceProduction swaps the scheme with the same name, or appends it
func (s *Schemes) ReplaceProduction(scheme ProductionScheme) {
	for i, p := range s.Production {
		if p.Name() == scheme.Name() {
			s.Production[i] = scheme
			return
		}
	}
	s.Production = append(s.Production, scheme)
}

// Validate checks every recognized upgrade type resolves to exactly one valid
// scheme
func (s Schemes) Validate() error {
	for _, t := range models.AllUpgradeTypes() {
		scheme, ok := s.Costs[t]
		if !ok {
			return fmt.Errorf("%w: no scheme for %s", ErrInvalidScheme, t)
		}
		if err := scheme.Validate(); err != nil {
			return fmt.Errorf("%s: %w", t, err)
		}
	}
	if len(s.Costs) != len(models.AllUpgradeTypes()) {
		return fmt.Errorf("%w: %d schemes for %d upgrade types", ErrInvalidScheme, len(s.Costs), len(models.AllUpgradeTypes()))
	}
	if s.Colony.Kind != ColonyScheme {
		return fmt.Errorf("%w: colony scheme has kind %s", ErrInvalidScheme, s.Colony.Kind)
	}
	if err := s.Colony.Validate(); err != nil {
		return fmt.Errorf("colony: %w", err)
	}
	seen := make(map[string]bool)
	for _, p := range s.Production {
		if seen[p.Name()] {
			return fmt.Errorf("%w: duplicate production scheme %s", ErrInvalidScheme, p.Name())
		}
		seen[p.Name()] = true
	}
	return nil
}

// RuleSet is an immutable, named version of the game rules
type RuleSet struct {
	name    string
	economy *Economy
}

// NewRuleSet validates the bundle and freezes it under a version name
func NewRuleSet(name string, schemes Schemes) (*RuleSet, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: rule set has no name", ErrInvalidScheme)
	}
	if err := schemes.Validate(); err != nil {
		return nil, fmt.Errorf("rule set %s: %w", name, err)
	}
	return &RuleSet{name: name, economy: &Economy{schemes: schemes.Clone()}}, nil
}

// MustNewRuleSet is NewRuleSet for shipped rule sets, where a bad scheme is a
// programming error
func MustNewRuleSet(name string, schemes Schemes) *RuleSet {
	rs, err := NewRuleSet(name, schemes)
	if err != nil {
		panic(err)
	}
	return rs
}

// Name returns the version identifier, e.g. "7.5.0"
func (r *RuleSet) Name() string {
	return r.name
}

// Economy returns the cost and production rules
func (r *RuleSet) Economy() *Economy {
	return r.economy
}

// Schemes returns a copy of the rule set's formula bundle
func (r *RuleSet) Schemes() Schemes {
	return r.economy.schemes.Clone()
}

func (r *RuleSet) String() string {
	return r.name
}
