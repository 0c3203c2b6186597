// Package pattern holds the data model of the regex catalogue together with
// the registry that owns it and the compiler that turns pattern text into
// full-string matchers.
//
// A Domain is a real-world input category such as "email" or "zip-code". Each
// domain owns one or more Variants, and every Variant carries the literal
// regular expression published to readers plus the Cases that pin its
// behaviour. All three types are plain values built once at start-up.
//
// # Registry
//
// NewRegistry validates a list of domains (unique keys, at least one variant,
// unique variant ids, no conflicting cases) and returns a read-only lookup
// table. Lookups never hand out internal slices, so the registry can be shared
// between goroutines without locking.
//
//	reg, err := pattern.NewRegistry(domains...)
//	v, err := reg.Variant("ip-address", "ipv4")
//	if errors.Is(err, pattern.ErrUnknownVariant) {
//	    // handle
//	}
//
// # Compiler
//
// Sources use a PCRE-like dialect with lookahead, so matching is backed by
// github.com/dlclark/regexp2 rather than the RE2-based standard library. The
// compiled expression is always wrapped as \A(?:source)\z: a Matcher answers
// whether the whole input matches, never whether the pattern occurs somewhere
// inside it.
//
//	c := pattern.NewCompiler(pattern.WithMatchTimeout(100 * time.Millisecond))
//	m, err := c.Compile(v)
//	ok := m.FullMatch("192.168.1.1")
//
// Compiler memoizes matchers by (source, case flag) in a small LRU, so the same
// source always yields the same *Matcher while it stays cached.
//
// # Error Handling
//
//   - ErrUnknownDomain / ErrUnknownVariant – lookup of a missing key.
//   - ErrPatternCompile – wrapped by *CompileError, which also carries the
//     offending source and the engine diagnostic.
//   - ErrInvalidRegistry – NewRegistry rejected the domain list.
package pattern
