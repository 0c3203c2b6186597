// Package validator provides rule-building helpers that bind catalogue
// variants to named fields and add the semantic checks a format regex cannot
// express: calendar dates, Luhn card checksums and ISBN check digits.
//
// A Rule pairs a boolean Check with translation-friendly error metadata.
// Apply evaluates rules and aggregates failures into ValidationErrors, which
// satisfies the error interface:
//
//	m, _ := compiler.Compile(variant)
//	err := validator.Apply(
//	    validator.MaxLenString("input", input, 4096),
//	    validator.MatchesVariant("input", input, m),
//	    validator.ValidCalendarDate("input", input),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // inspect verrs.Fields(), verrs.Get("input"), ...
//	}
//
// SemanticRules returns the extra rules that apply to a given domain and
// variant, e.g. a Luhn check for card numbers.
package validator
