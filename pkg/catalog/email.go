package catalog

import "github.com/dmitrymomot/regexbook/pkg/pattern"

func emailDomain() pattern.Domain {
	return pattern.Domain{
		Key:         "email",
		Title:       "Email address",
		Description: "Mailbox addresses of the form local-part@domain.",
		Variants: []pattern.Variant{
			{
				ID:          "recommended",
				Title:       "Recommended",
				Source:      `^(?!\.)(?!.*\.\.)([a-zA-Z0-9_'+\-\.]*)[a-zA-Z0-9_+-]@([a-zA-Z0-9][a-zA-Z0-9\-]*\.)+[a-zA-Z]{2,}$`,
				Description: "Rejects leading and consecutive dots in the local part and requires an alphabetic TLD.",
				Cases: []pattern.Case{
					{Input: "test@example.com", Expected: true},
					{Input: "user.name@domain.co.uk", Expected: true},
					{Input: "user+tag@example.org", Expected: true, Note: "plus addressing"},
					{Input: "o'reilly@example.com", Expected: true, Note: "apostrophe in local part"},
					{Input: "1234567890@example.com", Expected: true},
					{Input: "email@example-one.com", Expected: true, Note: "hyphen in domain label"},
					{Input: "_______@example.com", Expected: true},
					{Input: "abc..def@example.com", Expected: false, Note: "consecutive dots"},
					{Input: ".abc@example.com", Expected: false, Note: "leading dot"},
					{Input: "abc.@example.com", Expected: false, Note: "trailing dot in local part"},
					{Input: "plainaddress", Expected: false},
					{Input: "@missingdomain.com", Expected: false},
					{Input: "missing@domain", Expected: false, Note: "no TLD"},
					{Input: "email@-example.com", Expected: false, Note: "label starts with hyphen"},
					{Input: "email@example..com", Expected: false},
					{Input: "email@example.c", Expected: false, Note: "single-letter TLD"},
					{Input: "spaces @domain.com", Expected: false},
					{Input: "email@123.123.123.123", Expected: false, Note: "IP literal domain"},
					{Input: "", Expected: false},
				},
			},
			{
				ID:          "basic",
				Title:       "Basic",
				Source:      `^[^\s@]+@[^\s@]+\.[^\s@]+$`,
				Description: "Something, an at sign, something, a dot, something. Deliberately permissive.",
				Cases: []pattern.Case{
					{Input: "test@example.com", Expected: true},
					{Input: "abc..def@example.com", Expected: true, Note: "not rejected by the basic form"},
					{Input: ".abc@example.com", Expected: true},
					{Input: "email@123.123.123.123", Expected: true},
					{Input: "a@b.c", Expected: true},
					{Input: "plainaddress", Expected: false},
					{Input: "missing@domain", Expected: false},
					{Input: "two@@example.com", Expected: false},
					{Input: "spaces @domain.com", Expected: false},
					{Input: "user\u00a0name@example.com", Expected: false, Note: "no-break space"},
					{Input: "user\u3000name@example.com", Expected: false, Note: "ideographic space"},
					{Input: "user\u200bname@example.com", Expected: true, Note: "zero width space is not whitespace"},
					{Input: "", Expected: false},
				},
			},
		},
	}
}
