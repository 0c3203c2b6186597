package pattern_test

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regexbook/pkg/pattern"
)

func TestCompile(t *testing.T) {
	t.Run("full string semantics", func(t *testing.T) {
		m, err := pattern.Compile(pattern.Variant{ID: "zip", Source: `\d{5}`})
		require.NoError(t, err)

		assert.True(t, m.FullMatch("12345"))
		assert.False(t, m.FullMatch("a12345"), "unanchored source must not search")
		assert.False(t, m.FullMatch("123456"))
	})

	t.Run("trailing newline does not satisfy dollar", func(t *testing.T) {
		m, err := pattern.Compile(pattern.Variant{ID: "zip", Source: `^\d{5}$`})
		require.NoError(t, err)
		assert.True(t, m.FullMatch("12345"))
		assert.False(t, m.FullMatch("12345\n"))
	})

	t.Run("shorthand classes follow javascript", func(t *testing.T) {
		digits, err := pattern.Compile(pattern.Variant{ID: "zip", Source: `^\d{5}$`})
		require.NoError(t, err)
		assert.False(t, digits.FullMatch("١٢٣٤٥"), "arabic-indic digits")
		assert.False(t, digits.FullMatch("१२३४५"), "devanagari digits")
		assert.False(t, digits.FullMatch("１２３４５"), "fullwidth digits")

		word, err := pattern.Compile(pattern.Variant{ID: "word", Source: `^\w+$`})
		require.NoError(t, err)
		assert.True(t, word.FullMatch("hello_42"))
		assert.False(t, word.FullMatch("héllo"))

		space, err := pattern.Compile(pattern.Variant{ID: "space", Source: `^a\sb$`})
		require.NoError(t, err)
		assert.True(t, space.FullMatch("a\tb"))
		assert.True(t, space.FullMatch("a\u00a0b"), "no-break space is whitespace")
		assert.False(t, space.FullMatch("a\u200bb"), "zero width space is not")

		boundary, err := pattern.Compile(pattern.Variant{ID: "boundary", Source: `^ab\b.*$`})
		require.NoError(t, err)
		assert.True(t, boundary.FullMatch("abé"), "é is not a word character")
		assert.False(t, boundary.FullMatch("abc"))
	})

	t.Run("top level alternation stays anchored", func(t *testing.T) {
		m, err := pattern.Compile(pattern.Variant{ID: "alt", Source: `cat|dog`})
		require.NoError(t, err)
		assert.True(t, m.FullMatch("cat"))
		assert.True(t, m.FullMatch("dog"))
		assert.False(t, m.FullMatch("catdog"))
		assert.False(t, m.FullMatch("hotdog"))
	})

	t.Run("lookahead", func(t *testing.T) {
		m, err := pattern.Compile(pattern.Variant{ID: "ssn", Source: `^(?!000)\d{3}$`})
		require.NoError(t, err)
		assert.True(t, m.FullMatch("123"))
		assert.False(t, m.FullMatch("000"))
	})

	t.Run("case insensitive flag", func(t *testing.T) {
		v := pattern.Variant{ID: "yes", Source: `^(?:yes|y)$`}
		strict, err := pattern.Compile(v)
		require.NoError(t, err)
		assert.False(t, strict.FullMatch("YES"))
		assert.False(t, strict.CaseInsensitive())

		v.CaseInsensitive = true
		folded, err := pattern.Compile(v)
		require.NoError(t, err)
		assert.True(t, folded.FullMatch("YES"))
		assert.True(t, folded.FullMatch("yes"))
		assert.True(t, folded.CaseInsensitive())
	})

	t.Run("deterministic", func(t *testing.T) {
		m, err := pattern.Compile(pattern.Variant{ID: "d", Source: `^\d+$`})
		require.NoError(t, err)
		for range 3 {
			assert.True(t, m.FullMatch("42"))
			assert.False(t, m.FullMatch("4x2"))
		}
	})

	t.Run("source is kept byte for byte", func(t *testing.T) {
		src := `^[a-zA-Z]:\\(?:[^\\\/:*?"<>|\r\n]+\\)*[^\\\/:*?"<>|\r\n]*$`
		m, err := pattern.Compile(pattern.Variant{ID: "win", Source: src})
		require.NoError(t, err)
		assert.Equal(t, src, m.Source())
	})
}

func TestCompileError(t *testing.T) {
	testCases := []string{
		`^(abc$`,
		`^[a-$`,
		`a)(b`,
		`abc\`,
	}

	for _, src := range testCases {
		t.Run(src, func(t *testing.T) {
			m, err := pattern.Compile(pattern.Variant{ID: "broken", Source: src})
			require.Error(t, err)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, pattern.ErrPatternCompile)

			var compileErr *pattern.CompileError
			require.True(t, errors.As(err, &compileErr))
			assert.Equal(t, src, compileErr.Source)
			assert.Equal(t, "broken", compileErr.Variant)
			assert.NotNil(t, compileErr.Err)
			assert.Contains(t, err.Error(), "broken")
		})
	}
}

func TestCompilerCache(t *testing.T) {
	t.Run("same source yields same matcher", func(t *testing.T) {
		c := pattern.NewCompiler(pattern.WithCacheSize(4))
		a, err := c.Compile(pattern.Variant{ID: "a", Source: `^\d+$`})
		require.NoError(t, err)
		b, err := c.Compile(pattern.Variant{ID: "b", Source: `^\d+$`})
		require.NoError(t, err)
		assert.Same(t, a, b)

		stats := c.Stats()
		assert.Equal(t, uint64(1), stats.Hits)
		assert.Equal(t, uint64(1), stats.Misses)
		assert.Equal(t, 1, stats.Len)
	})

	t.Run("case flag is part of the key", func(t *testing.T) {
		c := pattern.NewCompiler()
		a, err := c.Compile(pattern.Variant{ID: "a", Source: `^yes$`})
		require.NoError(t, err)
		b, err := c.Compile(pattern.Variant{ID: "a", Source: `^yes$`, CaseInsensitive: true})
		require.NoError(t, err)
		assert.NotSame(t, a, b)
	})

	t.Run("evicts least recently used", func(t *testing.T) {
		c := pattern.NewCompiler(pattern.WithCacheSize(2))
		first, err := c.Compile(pattern.Variant{ID: "1", Source: `^1$`})
		require.NoError(t, err)
		_, err = c.Compile(pattern.Variant{ID: "2", Source: `^2$`})
		require.NoError(t, err)
		_, err = c.Compile(pattern.Variant{ID: "3", Source: `^3$`})
		require.NoError(t, err)

		assert.Equal(t, 2, c.Stats().Len)
		again, err := c.Compile(pattern.Variant{ID: "1", Source: `^1$`})
		require.NoError(t, err)
		assert.NotSame(t, first, again)
	})

	t.Run("failures are not cached", func(t *testing.T) {
		c := pattern.NewCompiler()
		_, err := c.Compile(pattern.Variant{ID: "x", Source: `^(x$`})
		require.Error(t, err)
		assert.Equal(t, 0, c.Stats().Len)
	})

	t.Run("disabled cache", func(t *testing.T) {
		c := pattern.NewCompiler(pattern.WithCacheSize(0))
		a, err := c.Compile(pattern.Variant{ID: "a", Source: `^a$`})
		require.NoError(t, err)
		b, err := c.Compile(pattern.Variant{ID: "a", Source: `^a$`})
		require.NoError(t, err)
		assert.NotSame(t, a, b)
		assert.Equal(t, pattern.CacheStats{}, c.Stats())
	})

	t.Run("concurrent callers share one matcher", func(t *testing.T) {
		c := pattern.NewCompiler()
		v := pattern.Variant{ID: "ip", Source: `^(?:\d{1,3}\.){3}\d{1,3}$`}

		var wg sync.WaitGroup
		matchers := make([]*pattern.Matcher, 16)
		for i := range matchers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				m, err := c.Compile(v)
				assert.NoError(t, err)
				matchers[i] = m
			}()
		}
		wg.Wait()

		for _, m := range matchers[1:] {
			assert.Same(t, matchers[0], m)
		}
	})
}

func TestMatchTimeout(t *testing.T) {
	c := pattern.NewCompiler(pattern.WithMatchTimeout(10*time.Millisecond), pattern.WithCacheSize(0))
	m, err := c.Compile(pattern.Variant{ID: "evil", Source: `^(a+)+$`})
	require.NoError(t, err)

	input := strings.Repeat("a", 64) + "!"
	ok, err := m.Match(input)
	assert.Error(t, err)
	assert.False(t, ok)
	assert.False(t, m.FullMatch(input))
}

func TestNewCompilerFromConfig(t *testing.T) {
	c := pattern.NewCompilerFromConfig(pattern.Config{MatchTimeout: time.Second, CacheSize: 1})
	a, err := c.Compile(pattern.Variant{ID: "a", Source: `^a$`})
	require.NoError(t, err)
	_, err = c.Compile(pattern.Variant{ID: "b", Source: `^b$`})
	require.NoError(t, err)
	again, err := c.Compile(pattern.Variant{ID: "a", Source: `^a$`})
	require.NoError(t, err)

	assert.NotSame(t, a, again)
	assert.Equal(t, 1, c.Stats().Len)
}
