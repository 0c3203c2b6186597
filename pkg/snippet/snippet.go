package snippet

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/dmitrymomot/regexbook/pkg/pattern"
)

// ErrUnknownLanguage is returned for a language with no template.
var ErrUnknownLanguage = errors.New("snippet: unknown language")

// Language identifies a target language.
type Language string

const (
	JavaScript Language = "javascript"
	Python     Language = "python"
	Go         Language = "go"
	Java       Language = "java"
	CSharp     Language = "csharp"
	PHP        Language = "php"
	Ruby       Language = "ruby"
)

// Languages returns every supported language in display order.
func Languages() []Language {
	return []Language{JavaScript, Python, Go, Java, CSharp, PHP, Ruby}
}

// ParseLanguage resolves a language name case-insensitively.
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Languages(), l) {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}
	return l, nil
}

var funcs = template.FuncMap{
	"jsRegex":    jsRegexLiteral,
	"pyRaw":      pyRawString,
	"goRaw":      goRawString,
	"quote":      strconv.Quote,
	"csVerbatim": csVerbatimString,
	"phpSingle":  phpSingleQuoted,
	"rubyRegex":  rubyRegexLiteral,
	"lookaround": hasLookaround,
	"goInline":   goInlineFlags,
	"anchors":    stringAnchors,
}

var templates = map[Language]*template.Template{
	JavaScript: template.Must(template.New("javascript").Funcs(funcs).Parse(
		`const re = {{jsRegex .Source .CaseInsensitive}};
const ok = re.test(input);
`)),
	Python: template.Must(template.New("python").Funcs(funcs).Parse(
		`import re

PATTERN = re.compile({{pyRaw .Source}}{{if .CaseInsensitive}}, re.IGNORECASE{{end}})
ok = PATTERN.fullmatch(value) is not None
`)),
	Go: template.Must(template.New("go").Funcs(funcs).Parse(
		`{{if lookaround .Source}}import "github.com/dlclark/regexp2"

var re = regexp2.MustCompile({{goRaw (anchors .Source)}}, regexp2.ECMAScript{{if .CaseInsensitive}}|regexp2.IgnoreCase{{end}})

ok, err := re.MatchString(value)
{{else}}import "regexp"

var re = regexp.MustCompile({{goRaw (goInline .Source .CaseInsensitive)}})

ok := re.MatchString(value)
{{end}}`)),
	Java: template.Must(template.New("java").Funcs(funcs).Parse(
		`import java.util.regex.Pattern;

Pattern p = Pattern.compile({{quote .Source}}{{if .CaseInsensitive}}, Pattern.CASE_INSENSITIVE{{end}});
boolean ok = p.matcher(value).matches();
`)),
	CSharp: template.Must(template.New("csharp").Funcs(funcs).Parse(
		`using System.Text.RegularExpressions;

var re = new Regex({{csVerbatim (anchors .Source)}}, RegexOptions.ECMAScript{{if .CaseInsensitive}} | RegexOptions.IgnoreCase{{end}});
bool ok = re.IsMatch(value);
`)),
	PHP: template.Must(template.New("php").Funcs(funcs).Parse(
		`$ok = preg_match({{phpSingle .Source .CaseInsensitive}}, $value) === 1;
`)),
	Ruby: template.Must(template.New("ruby").Funcs(funcs).Parse(
		`RE = {{rubyRegex .Source .CaseInsensitive}}
ok = RE.match?(value)
`)),
}

// Render produces the snippet for v in lang.
func Render(lang Language, v pattern.Variant) (string, error) {
	tmpl, ok := templates[lang]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("snippet: render %s: %w", lang, err)
	}
	return buf.String(), nil
}

// All renders v for every supported language.
func All(v pattern.Variant) (map[Language]string, error) {
	out := make(map[Language]string, len(templates))
	for _, lang := range Languages() {
		code, err := Render(lang, v)
		if err != nil {
			return nil, err
		}
		out[lang] = code
	}
	return out, nil
}
