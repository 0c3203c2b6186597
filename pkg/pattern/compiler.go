package pattern

import (
	"time"

	"github.com/dlclark/regexp2"
)

// Config holds compiler settings loaded from the environment.
type Config struct {
	MatchTimeout time.Duration `env:"REGEXBOOK_MATCH_TIMEOUT" envDefault:"250ms"`   // MatchTimeout bounds a single match; zero disables the bound.
	CacheSize    int           `env:"REGEXBOOK_MATCHER_CACHE_SIZE" envDefault:"128"` // CacheSize is the number of compiled matchers kept; zero disables caching.
}

// Matcher answers whether an entire input satisfies a variant source.
type Matcher struct {
	source          string
	caseInsensitive bool
	re              *regexp2.Regexp
}

// Source returns the variant source exactly as registered.
func (m *Matcher) Source() string { return m.source }

func (m *Matcher) CaseInsensitive() bool { return m.caseInsensitive }

// Match reports whether input matches the whole pattern.
// The error is non-nil only when the engine gives up, e.g. on match timeout.
func (m *Matcher) Match(input string) (bool, error) {
	return m.re.MatchString(input)
}

// FullMatch is Match with engine errors reported as no match.
func (m *Matcher) FullMatch(input string) bool {
	ok, err := m.re.MatchString(input)
	return err == nil && ok
}

// CompilerOption configures a Compiler.
type CompilerOption func(*Compiler)

// WithMatchTimeout bounds the time a single match may take. Non-positive
// values leave matching unbounded.
func WithMatchTimeout(d time.Duration) CompilerOption {
	return func(c *Compiler) { c.timeout = d }
}

// WithCacheSize sets how many compiled matchers are memoized. Zero disables caching.
func WithCacheSize(n int) CompilerOption {
	return func(c *Compiler) { c.cacheSize = n }
}

// Compiler turns variants into matchers, memoizing by source and case flag.
type Compiler struct {
	timeout   time.Duration
	cacheSize int
	cache     *matcherCache
}

// NewCompiler returns a Compiler with a 128 entry cache and no match timeout.
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{cacheSize: 128}
	for _, opt := range opts {
		opt(c)
	}
	if c.cacheSize > 0 {
		c.cache = newMatcherCache(c.cacheSize)
	}
	return c
}

// NewCompilerFromConfig creates a Compiler from cfg; opts are applied afterwards.
func NewCompilerFromConfig(cfg Config, opts ...CompilerOption) *Compiler {
	configOpts := []CompilerOption{
		WithMatchTimeout(cfg.MatchTimeout),
		WithCacheSize(cfg.CacheSize),
	}
	return NewCompiler(append(configOpts, opts...)...)
}

// Compile returns the matcher for v, or a *CompileError.
func (c *Compiler) Compile(v Variant) (*Matcher, error) {
	key := cacheKey{source: v.Source, caseInsensitive: v.CaseInsensitive}
	m, err := c.cache.getOrCompile(key, func() (*Matcher, error) {
		return compile(v.Source, v.CaseInsensitive, c.timeout)
	})
	if err != nil {
		return nil, &CompileError{Variant: v.ID, Source: v.Source, Err: err}
	}
	return m, nil
}

// Stats reports cache usage.
func (c *Compiler) Stats() CacheStats {
	return c.cache.stats()
}

// Compile compiles v without caching or timeout.
func Compile(v Variant) (*Matcher, error) {
	m, err := compile(v.Source, v.CaseInsensitive, 0)
	if err != nil {
		return nil, &CompileError{Variant: v.ID, Source: v.Source, Err: err}
	}
	return m, nil
}

func compile(source string, caseInsensitive bool, timeout time.Duration) (*Matcher, error) {
	// ECMAScript mode gives \d, \w, \s and \b their JavaScript meaning: no Unicode digits or letters.
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	if caseInsensitive {
		opts |= regexp2.IgnoreCase
	}

	// The bare source is parsed first: wrapping alone can hide unbalanced groups like "a)(b".
	if _, err := regexp2.Compile(source, opts); err != nil {
		return nil, err
	}

	// \A and \z pin the match to the whole input; $ alone would also accept a trailing newline.
	re, err := regexp2.Compile(`\A(?:`+source+`)\z`, opts)
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		re.MatchTimeout = timeout
	}

	return &Matcher{
		source:          source,
		caseInsensitive: caseInsensitive,
		re:              re,
	}, nil
}
