package snippet

import (
	"strconv"
	"strings"
)

// jsRegexLiteral builds /source/flags. Unescaped slashes outside a class are escaped.
func jsRegexLiteral(source string, caseInsensitive bool) string {
	out := "/" + escapeDelimiter(source, '/') + "/"
	if caseInsensitive {
		out += "i"
	}
	return out
}

// stringAnchors swaps a leading ^ and a trailing $ for \A and \z. Where $ also
// matches before a final newline (Ruby, .NET, regexp2), only \z holds the whole-string contract.
func stringAnchors(source string) string {
	src := source
	if strings.HasPrefix(src, "^") {
		src = `\A` + src[1:]
	}
	if strings.HasSuffix(src, "$") && !strings.HasSuffix(src, `\$`) {
		src = src[:len(src)-1] + `\z`
	}
	return src
}

func rubyRegexLiteral(source string, caseInsensitive bool) string {
	out := "/" + escapeDelimiter(stringAnchors(source), '/') + "/"
	if caseInsensitive {
		out += "i"
	}
	return out
}

// phpSingleQuoted wraps the source in PCRE delimiters inside a single-quoted PHP string.
func phpSingleQuoted(source string, caseInsensitive bool) string {
	body := "/" + escapeDelimiter(source, '/') + "/D"
	if caseInsensitive {
		body += "i"
	}
	body = strings.ReplaceAll(body, `\`, `\\`)
	body = strings.ReplaceAll(body, `'`, `\'`)
	return "'" + body + "'"
}

func pyRawString(source string) string {
	// A raw string cannot end in an odd backslash run or contain its own quote.
	if !strings.Contains(source, `"""`) && !strings.HasSuffix(source, `\`) && !strings.HasSuffix(source, `"`) {
		return `r"""` + source + `"""`
	}
	return strconv.Quote(source)
}

func goRawString(source string) string {
	if strings.Contains(source, "`") {
		return strconv.Quote(source)
	}
	return "`" + source + "`"
}

func csVerbatimString(source string) string {
	return `@"` + strings.ReplaceAll(source, `"`, `""`) + `"`
}

func goInlineFlags(source string, caseInsensitive bool) string {
	if caseInsensitive {
		return "(?i)" + source
	}
	return source
}

// hasLookaround reports whether source uses a construct RE2 rejects.
func hasLookaround(source string) bool {
	for _, tok := range []string{"(?=", "(?!", "(?<=", "(?<!"} {
		if strings.Contains(source, tok) {
			return true
		}
	}
	return false
}

// escapeDelimiter escapes bare occurrences of delim that sit outside a
// character class and are not already escaped.
func escapeDelimiter(source string, delim byte) string {
	var b strings.Builder
	b.Grow(len(source) + 4)
	inClass := false
	for i := 0; i < len(source); i++ {
		ch := source[i]
		switch {
		case ch == '\\' && i+1 < len(source):
			b.WriteByte(ch)
			b.WriteByte(source[i+1])
			i++
			continue
		case ch == '[':
			inClass = true
		case ch == ']':
			inClass = false
		case ch == delim && !inClass:
			b.WriteByte('\\')
		}
		b.WriteByte(ch)
	}
	return b.String()
}
