package pattern

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDomain is returned when a domain key is not in the registry.
	ErrUnknownDomain = errors.New("unknown validation domain")

	// ErrUnknownVariant is returned when a variant id is not defined under a domain.
	ErrUnknownVariant = errors.New("unknown pattern variant")

	// ErrPatternCompile is returned when a variant source is rejected by the regex engine.
	ErrPatternCompile = errors.New("pattern does not compile")

	// ErrInvalidRegistry is returned when the domain list violates registry invariants.
	ErrInvalidRegistry = errors.New("invalid pattern registry")
)

// CompileError describes a variant whose source failed to compile.
type CompileError struct {
	Variant string
	Source  string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: variant %q: %v (source %q)", ErrPatternCompile, e.Variant, e.Err, e.Source)
}

// Unwrap exposes both the sentinel and the engine diagnostic to errors.Is/As.
func (e *CompileError) Unwrap() []error {
	return []error{ErrPatternCompile, e.Err}
}
