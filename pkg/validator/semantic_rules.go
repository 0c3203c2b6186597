package validator

import (
	"strings"
	"time"
)

// ISODate is the layout of the recommended and basic date variants.
const ISODate = "2006-01-02"

// dateLayouts maps date variants to the layout their inputs use.
var dateLayouts = map[string]string{
	"recommended": ISODate,
	"basic":       ISODate,
	"us":          "01/02/2006",
	"eu":          "02/01/2006",
}

// ValidCalendarDate requires value to be a real YYYY-MM-DD date, leap years included.
func ValidCalendarDate(field, value string) Rule {
	return ValidCalendarDateLayout(field, value, ISODate)
}

// ValidCalendarDateLayout requires value to be a real date in the given time layout.
func ValidCalendarDateLayout(field, value, layout string) Rule {
	return newRule(field, "invalid calendar date", "validation.calendar_date", func() bool {
		_, err := time.Parse(layout, value)
		return err == nil
	}, map[string]any{"layout": layout})
}

// ValidCardChecksum requires a 13 to 19 digit number passing the Luhn check.
// Spaces and dashes are ignored.
func ValidCardChecksum(field, value string) Rule {
	return newRule(field, "invalid card number checksum", "validation.card_checksum", func() bool {
		return luhn(strings.NewReplacer(" ", "", "-", "").Replace(value))
	}, nil)
}

// ValidISBNChecksum requires a valid ISBN-10 or ISBN-13 check digit.
// Hyphens and spaces are ignored.
func ValidISBNChecksum(field, value string) Rule {
	return newRule(field, "invalid ISBN check digit", "validation.isbn_checksum", func() bool {
		cleaned := strings.NewReplacer(" ", "", "-", "").Replace(value)
		switch len(cleaned) {
		case 10:
			return isbn10(cleaned)
		case 13:
			return isbn13(cleaned)
		default:
			return false
		}
	}, nil)
}

// SemanticRules returns the checks layered on top of a domain's format regex.
// Domains with no such checks yield nil.
func SemanticRules(domain, variant, field, value string) []Rule {
	switch domain {
	case "date":
		if layout, ok := dateLayouts[variant]; ok {
			return []Rule{ValidCalendarDateLayout(field, value, layout)}
		}
	case "credit-debit-card-number":
		return []Rule{ValidCardChecksum(field, value)}
	case "isbn":
		return []Rule{ValidISBNChecksum(field, value)}
	}
	return nil
}

func luhn(digits string) bool {
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// isbn10 weights digits 10..1; X is only allowed as the final check digit.
func isbn10(s string) bool {
	sum := 0
	for i := range 10 {
		c := s[i]
		var d int
		switch {
		case c >= '0' && c <= '9':
			d = int(c - '0')
		case c == 'X' && i == 9:
			d = 10
		default:
			return false
		}
		sum += d * (10 - i)
	}
	return sum%11 == 0
}

func isbn13(s string) bool {
	sum := 0
	for i := range 13 {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		w := 1
		if i%2 == 1 {
			w = 3
		}
		sum += int(c-'0') * w
	}
	return sum%10 == 0
}
