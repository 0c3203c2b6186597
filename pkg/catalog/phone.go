package catalog

import "github.com/dmitrymomot/regexbook/pkg/pattern"

func phoneDomain() pattern.Domain {
	return pattern.Domain{
		Key:         "phone",
		Title:       "Phone number",
		Description: "Telephone numbers in international or North American notation.",
		Variants: []pattern.Variant{
			{
				ID:          "recommended",
				Title:       "E.164",
				Source:      `^\+[1-9]\d{1,14}$`,
				Description: "ITU-T E.164: a plus sign, a non-zero country code digit and at most 15 digits in total.",
				Cases: []pattern.Case{
					{Input: "+14155552671", Expected: true},
					{Input: "+442071838750", Expected: true},
					{Input: "+551155256325", Expected: true},
					{Input: "+12", Expected: true, Note: "shortest allowed"},
					{Input: "+123456789012345", Expected: true, Note: "15 digits"},
					{Input: "+1234567890123456", Expected: false, Note: "16 digits"},
					{Input: "14155552671", Expected: false, Note: "missing plus"},
					{Input: "+04155552671", Expected: false, Note: "country code cannot start with 0"},
					{Input: "+1 415 555 2671", Expected: false, Note: "separators"},
					{Input: "+1", Expected: false},
					{Input: "+١٢٠٢٥٥٥٠١٩٩", Expected: false, Note: "arabic-indic digits"},
					{Input: "", Expected: false},
				},
			},
			{
				ID:          "national",
				Title:       "North American",
				Source:      `^\(?([0-9]{3})\)?[-. ]?([0-9]{3})[-. ]?([0-9]{4})$`,
				Description: "NANP ten-digit numbers with optional parentheses and dash, dot or space separators.",
				Cases: []pattern.Case{
					{Input: "4155552671", Expected: true},
					{Input: "415-555-2671", Expected: true},
					{Input: "(415) 555-2671", Expected: true},
					{Input: "415.555.2671", Expected: true},
					{Input: "415 555 2671", Expected: true},
					{Input: "(415)555-2671", Expected: true},
					{Input: "415-555-267", Expected: false, Note: "too short"},
					{Input: "415-5555-2671", Expected: false},
					{Input: "415/555/2671", Expected: false, Note: "slash separator"},
					{Input: "+1 415-555-2671", Expected: false, Note: "country code not allowed"},
					{Input: "", Expected: false},
				},
			},
		},
	}
}
