package validator

import "unicode/utf8"

// MaxLenString limits value to max runes.
func MaxLenString(field, value string, max int) Rule {
	return newRule(field, "field is too long", "validation.max_length", func() bool {
		return utf8.RuneCountInString(value) <= max
	}, map[string]any{"max": max})
}
