package catalog

import "github.com/dmitrymomot/regexbook/pkg/pattern"

func domainDomain() pattern.Domain {
	return pattern.Domain{
		Key:         "domain",
		Title:       "Domain name",
		Description: "Fully qualified host names.",
		Variants: []pattern.Variant{
			{
				ID:          "recommended",
				Title:       "Recommended",
				Source:      `^(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`,
				Description: "Dot separated labels of up to 63 characters that do not start or end with a hyphen, alphabetic TLD.",
				Cases: []pattern.Case{
					{Input: "example.com", Expected: true},
					{Input: "sub.example.co.uk", Expected: true},
					{Input: "xn--bcher-kva.example", Expected: true, Note: "punycode label"},
					{Input: "a.io", Expected: true},
					{Input: "my-site.org", Expected: true},
					{Input: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa.com", Expected: true, Note: "63 character label"},
					{Input: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa.com", Expected: false, Note: "64 character label"},
					{Input: "-example.com", Expected: false},
					{Input: "example-.com", Expected: false},
					{Input: "example", Expected: false, Note: "no TLD"},
					{Input: "example..com", Expected: false},
					{Input: "example.c", Expected: false},
					{Input: "example.123", Expected: false, Note: "numeric TLD"},
					{Input: "exa_mple.com", Expected: false},
					{Input: "", Expected: false},
				},
			},
		},
	}
}

func urlAndPathDomain() pattern.Domain {
	return pattern.Domain{
		Key:         "url-and-path",
		Title:       "URL and path",
		Description: "HTTP and HTTPS URLs with optional path, query and fragment.",
		Variants: []pattern.Variant{
			{
				ID:          "recommended",
				Title:       "Recommended",
				Source:      `^https?:\/\/(?:www\.)?[-a-zA-Z0-9@:%._\+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b(?:[-a-zA-Z0-9()@:%_\+.~#?&\/=]*)$`,
				Description: "Scheme http or https, host with a dotted suffix, then any path, query or fragment characters.",
				Cases: []pattern.Case{
					{Input: "https://example.com", Expected: true},
					{Input: "http://www.example.com", Expected: true},
					{Input: "https://example.com/path/to/page", Expected: true},
					{Input: "https://example.com/search?q=regex&page=2", Expected: true},
					{Input: "https://example.com/page#section", Expected: true},
					{Input: "https://sub.example.co.uk:8080/a", Expected: true},
					{Input: "ftp://example.com", Expected: false, Note: "scheme"},
					{Input: "example.com", Expected: false, Note: "no scheme"},
					{Input: "https://", Expected: false},
					{Input: "https://example", Expected: false, Note: "no dotted suffix"},
					{Input: "https://example.com/path with space", Expected: false},
					{Input: "https://example.comé", Expected: false, Note: "non-ascii after the suffix"},
					{Input: "https://exämple.com", Expected: false, Note: "non-ascii host"},
					{Input: "", Expected: false},
				},
			},
		},
	}
}

func ipAddressDomain() pattern.Domain {
	return pattern.Domain{
		Key:         "ip-address",
		Title:       "IP address",
		Description: "IPv4 and IPv6 addresses in textual form.",
		Variants: []pattern.Variant{
			{
				ID:          "ipv4",
				Title:       "IPv4",
				Source:      `^(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`,
				Description: "Dotted quad with octets 0-255. Leading zeros are accepted.",
				Cases: []pattern.Case{
					{Input: "192.168.1.1", Expected: true},
					{Input: "0.0.0.0", Expected: true},
					{Input: "255.255.255.255", Expected: true},
					{Input: "10.0.0.255", Expected: true, Note: "private range is still well-formed"},
					{Input: "127.0.0.1", Expected: true, Note: "loopback"},
					{Input: "192.168.1.01", Expected: true, Note: "leading zeros accepted"},
					{Input: "256.1.1.1", Expected: false},
					{Input: "192.168.1", Expected: false, Note: "three octets"},
					{Input: "192.168.1.1.1", Expected: false, Note: "five octets"},
					{Input: "192.168.1.", Expected: false},
					{Input: "192.168.01.1000", Expected: false},
					{Input: "1.2.3.-4", Expected: false},
					{Input: "a.b.c.d", Expected: false},
					{Input: "", Expected: false},
				},
			},
			{
				ID:          "ipv6",
				Title:       "IPv6",
				Source:      `^(?:(?:[0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}|(?:[0-9a-fA-F]{1,4}:){1,7}:|(?:[0-9a-fA-F]{1,4}:){1,6}:[0-9a-fA-F]{1,4}|(?:[0-9a-fA-F]{1,4}:){1,5}(?::[0-9a-fA-F]{1,4}){1,2}|(?:[0-9a-fA-F]{1,4}:){1,4}(?::[0-9a-fA-F]{1,4}){1,3}|(?:[0-9a-fA-F]{1,4}:){1,3}(?::[0-9a-fA-F]{1,4}){1,4}|(?:[0-9a-fA-F]{1,4}:){1,2}(?::[0-9a-fA-F]{1,4}){1,5}|[0-9a-fA-F]{1,4}:(?::[0-9a-fA-F]{1,4}){1,6}|:(?:(?::[0-9a-fA-F]{1,4}){1,7}|:))$`,
				Description: "Full and zero-compressed hexadecimal forms. Embedded IPv4 and zone indexes are not accepted.",
				Cases: []pattern.Case{
					{Input: "2001:0db8:85a3:0000:0000:8a2e:0370:7334", Expected: true, Note: "full form"},
					{Input: "2001:db8:85a3::8a2e:370:7334", Expected: true, Note: "compressed"},
					{Input: "::1", Expected: true, Note: "loopback"},
					{Input: "::", Expected: true, Note: "unspecified"},
					{Input: "fe80::", Expected: true},
					{Input: "FE80::0202:B3FF:FE1E:8329", Expected: true, Note: "uppercase"},
					{Input: "2001:db8::", Expected: true},
					{Input: "2001:db8:85a3::8a2e::7334", Expected: false, Note: "two compressions"},
					{Input: "2001:db8:85a3:0:0:8a2e:370", Expected: false, Note: "seven groups"},
					{Input: "12345::", Expected: false, Note: "group longer than four digits"},
					{Input: "2001:db8::g", Expected: false, Note: "non-hex digit"},
					{Input: "::ffff:192.168.1.1", Expected: false, Note: "embedded IPv4"},
					{Input: "fe80::1%eth0", Expected: false, Note: "zone index"},
					{Input: "192.168.1.1", Expected: false},
					{Input: "", Expected: false},
				},
			},
		},
	}
}
