package catalog

import "github.com/dmitrymomot/regexbook/pkg/pattern"

func socialSecurityNumberDomain() pattern.Domain {
	return pattern.Domain{
		Key:         "social-security-number",
		Title:       "Social Security number",
		Description: "United States Social Security numbers in AAA-GG-SSSS form.",
		Variants: []pattern.Variant{
			{
				ID:          "recommended",
				Title:       "Recommended",
				Source:      `^(?!000|666|9\d{2})\d{3}-(?!00)\d{2}-(?!0000)\d{4}$`,
				Description: "Blocks area numbers 000, 666 and 900-999, group 00 and serial 0000.",
				Cases: []pattern.Case{
					{Input: "123-45-6789", Expected: true},
					{Input: "001-01-0001", Expected: true},
					{Input: "899-99-9999", Expected: true},
					{Input: "000-12-3456", Expected: false, Note: "area 000"},
					{Input: "666-12-3456", Expected: false, Note: "area 666"},
					{Input: "900-12-3456", Expected: false, Note: "area 900-999"},
					{Input: "123-00-4567", Expected: false, Note: "group 00"},
					{Input: "123-45-0000", Expected: false, Note: "serial 0000"},
					{Input: "123456789", Expected: false, Note: "missing dashes"},
					{Input: "123-45-678", Expected: false},
					{Input: "१२३-४५-६७८९", Expected: false, Note: "devanagari digits"},
					{Input: "", Expected: false},
				},
			},
			{
				ID:          "basic",
				Title:       "Basic",
				Source:      `^\d{3}-\d{2}-\d{4}$`,
				Description: "Digit shape only, no area, group or serial restrictions.",
				Cases: []pattern.Case{
					{Input: "123-45-6789", Expected: true},
					{Input: "000-12-3456", Expected: true, Note: "no area restriction"},
					{Input: "666-00-0000", Expected: true},
					{Input: "123456789", Expected: false},
					{Input: "12-345-6789", Expected: false},
					{Input: "abc-de-fghi", Expected: false},
					{Input: "١٢٣-٤٥-٦٧٨٩", Expected: false, Note: "arabic-indic digits"},
					{Input: "", Expected: false},
				},
			},
		},
	}
}

func isbnDomain() pattern.Domain {
	return pattern.Domain{
		Key:         "isbn",
		Title:       "ISBN",
		Description: "International Standard Book Numbers without separators.",
		Variants: []pattern.Variant{
			{
				ID:          "isbn10",
				Title:       "ISBN-10",
				Source:      `^\d{9}[\dX]$`,
				Description: "Nine digits and a check character which may be X. The check digit value is not verified.",
				Cases: []pattern.Case{
					{Input: "0306406152", Expected: true},
					{Input: "043942089X", Expected: true, Note: "X as check character"},
					{Input: "0000000000", Expected: true, Note: "format only"},
					{Input: "X123456789", Expected: false, Note: "X only in the last position"},
					{Input: "04394208X9", Expected: false},
					{Input: "043942089x", Expected: false, Note: "lowercase x"},
					{Input: "030640615", Expected: false, Note: "9 characters"},
					{Input: "03064061522", Expected: false, Note: "11 characters"},
					{Input: "0-306-40615-2", Expected: false, Note: "hyphens"},
					{Input: "०३०६४०६१५२", Expected: false, Note: "devanagari digits"},
					{Input: "", Expected: false},
				},
			},
			{
				ID:          "isbn13",
				Title:       "ISBN-13",
				Source:      `^97[89]\d{10}$`,
				Description: "Thirteen digits with the 978 or 979 Bookland prefix.",
				Cases: []pattern.Case{
					{Input: "9780306406157", Expected: true},
					{Input: "9791234567896", Expected: true},
					{Input: "9770306406157", Expected: false, Note: "prefix 977"},
					{Input: "978030640615", Expected: false, Note: "12 digits"},
					{Input: "978-0-306-40615-7", Expected: false, Note: "hyphens"},
					{Input: "978030640615X", Expected: false},
					{Input: "978٠٣٠٦٤٠٦١٥٧", Expected: false, Note: "arabic-indic digits"},
					{Input: "", Expected: false},
				},
			},
		},
	}
}

func zipCodeDomain() pattern.Domain {
	return pattern.Domain{
		Key:         "zip-code",
		Title:       "ZIP code",
		Description: "United States postal codes.",
		Variants: []pattern.Variant{
			{
				ID:          "recommended",
				Title:       "ZIP or ZIP+4",
				Source:      `^\d{5}(?:-\d{4})?$`,
				Description: "Five digits with an optional four digit extension.",
				Cases: []pattern.Case{
					{Input: "12345", Expected: true},
					{Input: "12345-6789", Expected: true, Note: "ZIP+4"},
					{Input: "00501", Expected: true},
					{Input: "1234", Expected: false},
					{Input: "123456", Expected: false},
					{Input: "12345-678", Expected: false},
					{Input: "12345 6789", Expected: false},
					{Input: "123456789", Expected: false, Note: "extension needs a dash"},
					{Input: "ABCDE", Expected: false},
					{Input: "١٢٣٤٥", Expected: false, Note: "arabic-indic digits"},
					{Input: "１２３４５", Expected: false, Note: "fullwidth digits"},
					{Input: "", Expected: false},
				},
			},
		},
	}
}

func creditDebitCardNumberDomain() pattern.Domain {
	return pattern.Domain{
		Key:         "credit-debit-card-number",
		Title:       "Credit or debit card number",
		Description: "Card numbers of the major networks, digits only.",
		Variants: []pattern.Variant{
			{
				ID:          "recommended",
				Title:       "Visa, Mastercard, American Express, Discover",
				Source:      `^(?:4\d{12}(?:\d{3})?|5[1-5]\d{14}|2(?:2[2-9]\d|[3-6]\d{2}|7[01]\d|720)\d{12}|3[47]\d{13}|6(?:011|5\d{2})\d{12})$`,
				Description: "Issuer prefix and length only. Separators are not stripped and the Luhn checksum is not computed.",
				Cases: []pattern.Case{
					{Input: "4532015112830366", Expected: true, Note: "Visa, 16 digits"},
					{Input: "4222222222222", Expected: true, Note: "Visa, 13 digits"},
					{Input: "5425233430109903", Expected: true, Note: "Mastercard 5-series"},
					{Input: "2223000048410010", Expected: true, Note: "Mastercard 2-series"},
					{Input: "374245455400126", Expected: true, Note: "American Express"},
					{Input: "6011000990139424", Expected: true, Note: "Discover"},
					{Input: "6500000000000002", Expected: true, Note: "Discover 65"},
					{Input: "4532015112830367", Expected: true, Note: "format only, checksum not verified"},
					{Input: "4532-0151-1283-0366", Expected: false, Note: "separators"},
					{Input: "4532 0151 1283 0366", Expected: false, Note: "spaces"},
					{Input: "1234567890123456", Expected: false, Note: "unknown issuer prefix"},
					{Input: "5625233430109903", Expected: false, Note: "Mastercard range ends at 55"},
					{Input: "37424545540012", Expected: false, Note: "Amex needs 15 digits"},
					{Input: "45320151128303661", Expected: false, Note: "17 digits"},
					{Input: "", Expected: false},
				},
			},
		},
	}
}
