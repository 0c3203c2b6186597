package snippet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regexbook/pkg/catalog"
	"github.com/dmitrymomot/regexbook/pkg/pattern"
	"github.com/dmitrymomot/regexbook/pkg/snippet"
)

var zip = pattern.Variant{ID: "recommended", Source: `^\d{5}(?:-\d{4})?$`}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang     snippet.Language
		variant  pattern.Variant
		contains []string
	}{
		{snippet.JavaScript, zip, []string{`/^\d{5}(?:-\d{4})?$/`, "re.test(input)"}},
		{snippet.Python, zip, []string{`re.compile(r"""^\d{5}(?:-\d{4})?$""")`, "fullmatch"}},
		{snippet.Go, zip, []string{`import "regexp"`, "regexp.MustCompile(`^\\d{5}(?:-\\d{4})?$`)"}},
		{snippet.Java, zip, []string{`Pattern.compile("^\\d{5}(?:-\\d{4})?$")`, "matches()"}},
		{snippet.CSharp, zip, []string{`new Regex(@"\A\d{5}(?:-\d{4})?\z", RegexOptions.ECMAScript)`}},
		{snippet.PHP, zip, []string{`preg_match('/^\\d{5}(?:-\\d{4})?$/D', $value)`}},
		{snippet.Ruby, zip, []string{`RE = /\A\d{5}(?:-\d{4})?\z/`}},
	}

	for _, tt := range tests {
		t.Run(string(tt.lang), func(t *testing.T) {
			t.Parallel()
			code, err := snippet.Render(tt.lang, tt.variant)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, code, want)
			}
		})
	}
}

func TestRenderCaseInsensitive(t *testing.T) {
	t.Parallel()

	v := pattern.Variant{ID: "recommended", Source: `^(?:yes|y)$`, CaseInsensitive: true}

	js, err := snippet.Render(snippet.JavaScript, v)
	require.NoError(t, err)
	assert.Contains(t, js, `/^(?:yes|y)$/i`)

	py, err := snippet.Render(snippet.Python, v)
	require.NoError(t, err)
	assert.Contains(t, py, "re.IGNORECASE")

	goCode, err := snippet.Render(snippet.Go, v)
	require.NoError(t, err)
	assert.Contains(t, goCode, "`(?i)^(?:yes|y)$`")

	php, err := snippet.Render(snippet.PHP, v)
	require.NoError(t, err)
	assert.Contains(t, php, `/Di'`)
}

func TestRenderLookaroundUsesRegexp2(t *testing.T) {
	t.Parallel()

	v := pattern.Variant{ID: "recommended", Source: `^(?!000)\d{3}$`}
	code, err := snippet.Render(snippet.Go, v)
	require.NoError(t, err)
	assert.Contains(t, code, "github.com/dlclark/regexp2")
	assert.Contains(t, code, "regexp2.MustCompile(`\\A(?!000)\\d{3}\\z`, regexp2.ECMAScript)")
	assert.NotContains(t, code, `import "regexp"`)

	v.CaseInsensitive = true
	code, err = snippet.Render(snippet.Go, v)
	require.NoError(t, err)
	assert.Contains(t, code, "regexp2.ECMAScript|regexp2.IgnoreCase")
}

func TestRenderPinsEndOfString(t *testing.T) {
	t.Parallel()

	ssn := pattern.Variant{ID: "basic", Source: `^\d{3}-\d{2}-\d{4}$`}
	for _, lang := range []snippet.Language{snippet.CSharp, snippet.Ruby} {
		code, err := snippet.Render(lang, ssn)
		require.NoError(t, err)
		assert.Contains(t, code, `\A\d{3}-\d{2}-\d{4}\z`, lang)
		assert.NotContains(t, code, `$`, lang)
	}

	lookahead := pattern.Variant{ID: "recommended", Source: `^(?!000)\d{3}-\d{2}-\d{4}$`}
	code, err := snippet.Render(snippet.Go, lookahead)
	require.NoError(t, err)
	assert.Contains(t, code, `\A(?!000)\d{3}-\d{2}-\d{4}\z`)

	escaped := pattern.Variant{ID: "price", Source: `^\d+\$`}
	code, err = snippet.Render(snippet.CSharp, escaped)
	require.NoError(t, err)
	assert.Contains(t, code, `@"\A\d+\$"`, "an escaped dollar is a literal")
}

func TestRenderEscapesDelimiters(t *testing.T) {
	t.Parallel()

	v := pattern.Variant{ID: "x", Source: `^a/b[/]c'd"$`}

	js, err := snippet.Render(snippet.JavaScript, v)
	require.NoError(t, err)
	assert.Contains(t, js, `/^a\/b[/]c'd"$/`)

	php, err := snippet.Render(snippet.PHP, v)
	require.NoError(t, err)
	assert.Contains(t, php, `'/^a\\/b[/]c\'d"$/D'`)

	cs, err := snippet.Render(snippet.CSharp, v)
	require.NoError(t, err)
	assert.Contains(t, cs, `@"\Aa/b[/]c'd""\z"`)

	py, err := snippet.Render(snippet.Python, v)
	require.NoError(t, err)
	assert.Contains(t, py, `r"""^a/b[/]c'd"$"""`)

	py, err = snippet.Render(snippet.Python, pattern.Variant{ID: "x", Source: `^say "hi"`})
	require.NoError(t, err)
	assert.Contains(t, py, `re.compile("^say \"hi\"")`)
}

func TestRenderUnknownLanguage(t *testing.T) {
	t.Parallel()

	_, err := snippet.Render("cobol", zip)
	assert.ErrorIs(t, err, snippet.ErrUnknownLanguage)
}

func TestParseLanguage(t *testing.T) {
	t.Parallel()

	l, err := snippet.ParseLanguage(" Python ")
	require.NoError(t, err)
	assert.Equal(t, snippet.Python, l)

	_, err = snippet.ParseLanguage("perl")
	assert.ErrorIs(t, err, snippet.ErrUnknownLanguage)
}

func TestAllCoversCatalogue(t *testing.T) {
	t.Parallel()

	for _, d := range catalog.Domains() {
		for _, v := range d.Variants {
			out, err := snippet.All(v)
			require.NoError(t, err, "%s/%s", d.Key, v.ID)
			assert.Len(t, out, len(snippet.Languages()))
		}
	}
}
