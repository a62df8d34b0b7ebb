// Package intent maps free-text messages to a coarse routing category via
// keyword-set membership. The keyword sets overlap on purpose ("order" pulls
// odd phrasings into the customer path); the fixed rule priority resolves
// every overlap, so a message always gets exactly one intent.
package intent

import "strings"

// Intent is the coarse category a message is routed to before tool dispatch.
type Intent string

const (
	Inventory Intent = "inventory"
	Customer  Intent = "customer"
	General   Intent = "general"
)

// Rule binds an intent to the keywords that trigger it.
type Rule struct {
	Intent   Intent
	Keywords []string
}

// DefaultRules returns the stock rule set in priority order. Inventory is
// checked before customer, so "Is my order in stock?" routes to inventory.
func DefaultRules() []Rule {
	return []Rule{
		{Intent: Inventory, Keywords: []string{"stock", "inventory", "available", "have"}},
		{Intent: Customer, Keywords: []string{"customer", "order", "purchase", "bought", "ord-"}},
	}
}

// Classifier routes messages by keyword containment, first matching rule
// wins.
type Classifier struct {
	rules []Rule
}

// New creates a Classifier with the given rules. Nil rules fall back to
// DefaultRules.
func New(rules []Rule) *Classifier {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Classifier{rules: rules}
}

// Classify returns the intent for the message: the first rule whose keyword
// set has a case-insensitive substring hit, or General when nothing matches.
func (c *Classifier) Classify(message string) Intent {
	lower := strings.ToLower(message)
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Intent
			}
		}
	}
	return General
}
