package models

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// upgradeTypeNames implements fuzzy.Source over every upgrade type
type upgradeTypeNames []UpgradeType

func (u upgradeTypeNames) String(i int) string {
	return u[i].String()
}

func (u upgradeTypeNames) Len() int {
	return len(u)
}

// SuggestUpgradeTypes returns up to limit upgrade types whose "kind:name"
// form fuzzily matches the query, best match first
func SuggestUpgradeTypes(query string, limit int) []UpgradeType {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || limit <= 0 {
		return nil
	}
	source := upgradeTypeNames(AllUpgradeTypes())
	matches := fuzzy.FindFrom(query, source)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	suggestions := make([]UpgradeType, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, source[m.Index])
	}
	return suggestions
}
