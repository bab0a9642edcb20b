// Package classify assigns categories to uncategorized transactions by
// matching their descriptions against keyword rules.
package classify

import (
	"strings"

	"github.com/tallyware/tally/internal/model"
)

// Rule maps description keywords to a category.
type Rule struct {
	Category string
	Keywords []string
}

// DefaultRules covers the common merchant vocabulary seen in bank
// exports. Callers can supply their own rule set instead.
func DefaultRules() []Rule {
	return []Rule{
		{Category: "food", Keywords: []string{"grocery", "supermarket", "market", "restaurant", "cafe", "coffee", "pizza", "takeout"}},
		{Category: "transport", Keywords: []string{"fuel", "gas station", "parking", "uber", "taxi", "transit", "metro"}},
		{Category: "software", Keywords: []string{"subscription", "saas", "license", "cloud", "hosting"}},
		{Category: "utilities", Keywords: []string{"electric", "water", "internet", "phone", "utility"}},
		{Category: "entertainment", Keywords: []string{"cinema", "movie", "streaming", "concert", "game"}},
	}
}

// Matcher evaluates transactions against a fixed rule set. Rules are
// checked in order; the first match wins.
type Matcher struct {
	rules []Rule
}

// NewMatcher creates a matcher with the given rules.
func NewMatcher(rules []Rule) *Matcher {
	return &Matcher{rules: rules}
}

// Match returns the category for a description, or "" when no rule
// matches. Matching is case-insensitive substring comparison.
func (m *Matcher) Match(description string) string {
	desc := strings.ToLower(description)
	for _, rule := range m.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(desc, kw) {
				return rule.Category
			}
		}
	}
	return ""
}

// Apply fills in categories for transactions still carrying the default
// category. Transactions with an explicit category are left alone.
func (m *Matcher) Apply(txns []model.Transaction) int {
	categorized := 0
	for i := range txns {
		if txns[i].Category != "" && txns[i].Category != model.DefaultCategory {
			continue
		}
		if category := m.Match(txns[i].Description); category != "" {
			txns[i].Category = category
			categorized++
		}
	}
	return categorized
}
