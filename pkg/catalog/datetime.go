package catalog

import "github.com/dmitrymomot/regexbook/pkg/pattern"

func dateDomain() pattern.Domain {
	return pattern.Domain{
		Key:         "date",
		Title:       "Date",
		Description: "Calendar dates in ISO 8601 and common regional notations.",
		Variants: []pattern.Variant{
			{
				ID:          "recommended",
				Title:       "ISO 8601",
				Source:      `^(19|20)\d{2}-(?:(?:0[13578]|1[02])-(?:0[1-9]|[12]\d|3[01])|(?:0[469]|11)-(?:0[1-9]|[12]\d|30)|02-(?:0[1-9]|1\d|2\d))$`,
				Description: "YYYY-MM-DD for years 1900-2099 with per-month day limits. February always allows 29 days; leap years are not checked.",
				Cases: []pattern.Case{
					{Input: "2024-01-31", Expected: true},
					{Input: "2024-02-29", Expected: true, Note: "leap day"},
					{Input: "2023-02-29", Expected: true, Note: "format only: leap years are not checked"},
					{Input: "2024-02-30", Expected: false, Note: "February never has 30 days"},
					{Input: "2024-04-30", Expected: true},
					{Input: "2024-04-31", Expected: false, Note: "April has 30 days"},
					{Input: "1900-12-31", Expected: true, Note: "lower year bound"},
					{Input: "2099-12-31", Expected: true, Note: "upper year bound"},
					{Input: "1899-12-31", Expected: false},
					{Input: "2100-01-01", Expected: false},
					{Input: "2024-13-01", Expected: false},
					{Input: "2024-00-10", Expected: false},
					{Input: "2024-1-5", Expected: false, Note: "missing zero padding"},
					{Input: "2024/01/05", Expected: false},
					{Input: "20٢٤-01-31", Expected: false, Note: "arabic-indic digits"},
					{Input: "", Expected: false},
				},
			},
			{
				ID:          "basic",
				Title:       "Basic",
				Source:      `^\d{4}-\d{2}-\d{2}$`,
				Description: "Digit shape YYYY-MM-DD only.",
				Cases: []pattern.Case{
					{Input: "2024-01-31", Expected: true},
					{Input: "2024-02-30", Expected: true, Note: "shape only"},
					{Input: "0000-99-99", Expected: true, Note: "shape only"},
					{Input: "24-01-31", Expected: false},
					{Input: "2024-1-31", Expected: false},
					{Input: "2024/01/31", Expected: false},
					{Input: "٢٠٢٤-٠١-٣١", Expected: false, Note: "arabic-indic digits"},
					{Input: "", Expected: false},
				},
			},
			{
				ID:          "us",
				Title:       "US (MM/DD/YYYY)",
				Source:      `^(0[1-9]|1[0-2])\/(0[1-9]|[12]\d|3[01])\/(19|20)\d{2}$`,
				Description: "Month first, slash separated, years 1900-2099.",
				Cases: []pattern.Case{
					{Input: "12/31/2024", Expected: true},
					{Input: "01/01/1900", Expected: true},
					{Input: "02/30/2024", Expected: true, Note: "format only"},
					{Input: "13/01/2024", Expected: false},
					{Input: "31/12/2024", Expected: false, Note: "day first"},
					{Input: "1/1/2024", Expected: false, Note: "missing zero padding"},
					{Input: "12-31-2024", Expected: false},
					{Input: "", Expected: false},
				},
			},
			{
				ID:          "eu",
				Title:       "European (DD/MM/YYYY)",
				Source:      `^(0[1-9]|[12]\d|3[01])\/(0[1-9]|1[0-2])\/(19|20)\d{2}$`,
				Description: "Day first, slash separated, years 1900-2099.",
				Cases: []pattern.Case{
					{Input: "31/12/2024", Expected: true},
					{Input: "01/01/1900", Expected: true},
					{Input: "12/31/2024", Expected: false, Note: "month first"},
					{Input: "32/01/2024", Expected: false},
					{Input: "1/1/2024", Expected: false},
					{Input: "31.12.2024", Expected: false},
					{Input: "", Expected: false},
				},
			},
		},
	}
}

func timeDomain() pattern.Domain {
	return pattern.Domain{
		Key:         "time",
		Title:       "Time",
		Description: "Clock times in 24-hour and 12-hour notation.",
		Variants: []pattern.Variant{
			{
				ID:          "recommended",
				Title:       "24-hour",
				Source:      `^([01]\d|2[0-3]):[0-5]\d(?::[0-5]\d)?$`,
				Description: "HH:MM with optional :SS, 00:00 through 23:59:59.",
				Cases: []pattern.Case{
					{Input: "00:00", Expected: true},
					{Input: "23:59", Expected: true},
					{Input: "12:30:45", Expected: true, Note: "with seconds"},
					{Input: "23:59:59", Expected: true},
					{Input: "24:00", Expected: false},
					{Input: "12:60", Expected: false},
					{Input: "12:30:60", Expected: false},
					{Input: "9:30", Expected: false, Note: "hour must be two digits"},
					{Input: "12:30 PM", Expected: false},
					{Input: "1230", Expected: false},
					{Input: "1٤:30", Expected: false, Note: "arabic-indic digit"},
					{Input: "", Expected: false},
				},
			},
			{
				ID:          "12-hour",
				Title:       "12-hour",
				Source:      `^(0?[1-9]|1[0-2]):[0-5]\d\s?(?:AM|PM|am|pm)$`,
				Description: "H:MM or HH:MM followed by AM or PM, optional space.",
				Cases: []pattern.Case{
					{Input: "9:30 AM", Expected: true},
					{Input: "09:30am", Expected: true},
					{Input: "12:00 PM", Expected: true},
					{Input: "11:59 pm", Expected: true},
					{Input: "00:30 AM", Expected: false, Note: "no hour zero"},
					{Input: "13:00 PM", Expected: false},
					{Input: "12:00", Expected: false, Note: "missing meridiem"},
					{Input: "12:00 Pm", Expected: false, Note: "mixed case meridiem"},
					{Input: "9:30\u00a0AM", Expected: true, Note: "no-break space is whitespace"},
					{Input: "9:30\u200bAM", Expected: false, Note: "zero width space is not whitespace"},
					{Input: "9:٣٠ AM", Expected: false, Note: "arabic-indic digits"},
					{Input: "", Expected: false},
				},
			},
		},
	}
}
