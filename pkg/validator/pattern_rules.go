package validator

import "github.com/dmitrymomot/regexbook/pkg/pattern"

// MatchesVariant requires value to fully match the compiled variant.
// A nil matcher or an engine error (e.g. a match timeout) fails the rule.
func MatchesVariant(field, value string, m *pattern.Matcher) Rule {
	values := map[string]any{}
	if m != nil {
		values["pattern"] = m.Source()
	}
	return newRule(field, "value does not match the required format", "validation.pattern", func() bool {
		return m != nil && m.FullMatch(value)
	}, values)
}
