package catalog

import "github.com/dmitrymomot/regexbook/pkg/pattern"

func alphanumericDomain() pattern.Domain {
	return pattern.Domain{
		Key:         "alphanumeric",
		Title:       "Alphanumeric",
		Description: "ASCII letters and digits only.",
		Variants: []pattern.Variant{
			{
				ID:          "recommended",
				Title:       "Recommended",
				Source:      `^[a-zA-Z0-9]+$`,
				Description: "One or more ASCII letters or digits.",
				Cases: []pattern.Case{
					{Input: "abc123", Expected: true},
					{Input: "ABC", Expected: true},
					{Input: "123", Expected: true},
					{Input: "a", Expected: true},
					{Input: "abc 123", Expected: false, Note: "space"},
					{Input: "abc_123", Expected: false, Note: "underscore"},
					{Input: "abc-123", Expected: false},
					{Input: "héllo", Expected: false, Note: "non-ASCII letter"},
					{Input: "", Expected: false},
				},
			},
		},
	}
}

func textLengthDomain() pattern.Domain {
	return pattern.Domain{
		Key:         "text-length",
		Title:       "Text length",
		Description: "Single-line text constrained by character count.",
		Variants: []pattern.Variant{
			{
				ID:          "max",
				Title:       "At most 32 characters",
				Source:      `^.{0,32}$`,
				Description: "Up to 32 characters on a single line. The empty string is within bounds.",
				Cases: []pattern.Case{
					{Input: "", Expected: true, Note: "zero length is within bounds"},
					{Input: "hello", Expected: true},
					{Input: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Expected: true, Note: "exactly 32"},
					{Input: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Expected: false, Note: "33 characters"},
					{Input: "line one\nline two", Expected: false, Note: "newlines are not characters of a single line"},
				},
			},
			{
				ID:          "min",
				Title:       "At least 8 characters",
				Source:      `^.{8,}$`,
				Description: "Eight or more characters on a single line.",
				Cases: []pattern.Case{
					{Input: "password", Expected: true, Note: "exactly 8"},
					{Input: "a much longer sentence", Expected: true},
					{Input: "short", Expected: false},
					{Input: "1234567", Expected: false, Note: "7 characters"},
					{Input: "", Expected: false},
				},
			},
			{
				ID:          "range",
				Title:       "Between 8 and 32 characters",
				Source:      `^.{8,32}$`,
				Description: "Eight to 32 characters on a single line.",
				Cases: []pattern.Case{
					{Input: "12345678", Expected: true, Note: "lower bound"},
					{Input: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", Expected: true, Note: "upper bound"},
					{Input: "1234567", Expected: false},
					{Input: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", Expected: false},
					{Input: "", Expected: false},
				},
			},
		},
	}
}

func numberOfLinesDomain() pattern.Domain {
	return pattern.Domain{
		Key:         "number-of-lines",
		Title:       "Number of lines",
		Description: "Multi-line text constrained by its line count.",
		Variants: []pattern.Variant{
			{
				ID:          "max",
				Title:       "At most 20 lines",
				Source:      `^(?:[^\n]*\n){0,19}[^\n]*$`,
				Description: "Up to 19 line breaks, that is at most 20 lines. The empty string is one empty line.",
				Cases: []pattern.Case{
					{Input: "", Expected: true, Note: "zero-length text is within bounds"},
					{Input: "single line", Expected: true},
					{Input: "one\ntwo\nthree", Expected: true},
					{Input: "x\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx", Expected: true, Note: "exactly 20 lines"},
					{Input: "x\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx", Expected: false, Note: "21 lines"},
					{Input: "\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n", Expected: true, Note: "20 empty lines"},
					{Input: "\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n", Expected: false, Note: "21 empty lines"},
				},
			},
			{
				ID:          "min",
				Title:       "At least 3 lines",
				Source:      `^(?:[^\n]*\n){2,}[^\n]*$`,
				Description: "Two or more line breaks, that is at least 3 lines.",
				Cases: []pattern.Case{
					{Input: "one\ntwo\nthree", Expected: true},
					{Input: "a\nb\nc\nd", Expected: true},
					{Input: "\n\n", Expected: true, Note: "three empty lines"},
					{Input: "one\ntwo", Expected: false},
					{Input: "single line", Expected: false},
					{Input: "", Expected: false},
				},
			},
		},
	}
}

func affirmationDomain() pattern.Domain {
	return pattern.Domain{
		Key:         "affirmation",
		Title:       "Affirmation",
		Description: "Words and tokens a user may type to answer yes.",
		Variants: []pattern.Variant{
			{
				ID:              "recommended",
				Title:           "Recommended",
				Source:          `^(?:yes|y|true|1|on|ok|okay|sure)$`,
				CaseInsensitive: true,
				Description:     "Common affirmative answers, compared without regard to case.",
				Cases: []pattern.Case{
					{Input: "yes", Expected: true},
					{Input: "YES", Expected: true, Note: "case-insensitive"},
					{Input: "Yes", Expected: true},
					{Input: "y", Expected: true},
					{Input: "Y", Expected: true},
					{Input: "true", Expected: true},
					{Input: "TRUE", Expected: true},
					{Input: "1", Expected: true},
					{Input: "on", Expected: true},
					{Input: "OK", Expected: true},
					{Input: "okay", Expected: true},
					{Input: "sure", Expected: true},
					{Input: "no", Expected: false},
					{Input: "yes please", Expected: false},
					{Input: " yes", Expected: false, Note: "leading space"},
					{Input: "yess", Expected: false},
					{Input: "0", Expected: false},
					{Input: "", Expected: false},
				},
			},
		},
	}
}

func numbersDomain() pattern.Domain {
	return pattern.Domain{
		Key:         "numbers",
		Title:       "Numbers",
		Description: "Decimal numbers written with digits.",
		Variants: []pattern.Variant{
			{
				ID:          "recommended",
				Title:       "Recommended",
				Source:      `^-?\d+(?:\.\d+)?$`,
				Description: "Optional minus sign, integer part, optional fractional part.",
				Cases: []pattern.Case{
					{Input: "0", Expected: true},
					{Input: "42", Expected: true},
					{Input: "-17", Expected: true},
					{Input: "3.14", Expected: true},
					{Input: "-0.5", Expected: true},
					{Input: "007", Expected: true, Note: "leading zeros are accepted"},
					{Input: ".5", Expected: false, Note: "integer part required"},
					{Input: "5.", Expected: false, Note: "fraction digits required"},
					{Input: "+5", Expected: false, Note: "plus sign not accepted"},
					{Input: "1,000", Expected: false, Note: "no grouping separators"},
					{Input: "1e10", Expected: false, Note: "no exponent"},
					{Input: "--1", Expected: false},
					{Input: "٤٢", Expected: false, Note: "arabic-indic digits"},
					{Input: "", Expected: false},
				},
			},
		},
	}
}
