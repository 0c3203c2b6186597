package pattern

import (
	"errors"
	"fmt"
)

// Registry is an ordered, read-only mapping from domain key to Domain.
// It is safe for concurrent use once constructed.
type Registry struct {
	domains []Domain
	index   map[string]int
}

// NewRegistry validates the domains and builds a registry preserving their order.
// Every violation is reported, joined under ErrInvalidRegistry.
func NewRegistry(domains ...Domain) (*Registry, error) {
	r := &Registry{
		domains: make([]Domain, 0, len(domains)),
		index:   make(map[string]int, len(domains)),
	}

	var errs []error
	for _, d := range domains {
		if err := validateDomain(d); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := r.index[d.Key]; dup {
			errs = append(errs, fmt.Errorf("duplicate domain key %q", d.Key))
			continue
		}
		r.index[d.Key] = len(r.domains)
		r.domains = append(r.domains, d.clone())
	}

	if len(errs) > 0 {
		return nil, errors.Join(append([]error{ErrInvalidRegistry}, errs...)...)
	}
	return r, nil
}

// MustRegistry works like NewRegistry but panics on invalid input.
// Intended for catalogues defined in source code.
func MustRegistry(domains ...Domain) *Registry {
	r, err := NewRegistry(domains...)
	if err != nil {
		panic(err)
	}
	return r
}

// Domain returns the domain registered under key.
func (r *Registry) Domain(key string) (Domain, error) {
	i, ok := r.index[key]
	if !ok {
		return Domain{}, fmt.Errorf("%w: %q", ErrUnknownDomain, key)
	}
	return r.domains[i].clone(), nil
}

// Variant returns the variant id registered under domain key.
func (r *Registry) Variant(key, id string) (Variant, error) {
	i, ok := r.index[key]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %q", ErrUnknownDomain, key)
	}
	v, ok := r.domains[i].Variant(id)
	if !ok {
		return Variant{}, fmt.Errorf("%w: %q in domain %q", ErrUnknownVariant, id, key)
	}
	return v, nil
}

// Domains returns every domain in registration order.
func (r *Registry) Domains() []Domain {
	out := make([]Domain, len(r.domains))
	for i, d := range r.domains {
		out[i] = d.clone()
	}
	return out
}

// Keys returns every domain key in registration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.domains))
	for i, d := range r.domains {
		keys[i] = d.Key
	}
	return keys
}

func (r *Registry) Len() int {
	return len(r.domains)
}

// Validate compiles every variant and returns all compile failures joined.
// A nil compiler compiles without caching.
func (r *Registry) Validate(c *Compiler) error {
	if c == nil {
		c = NewCompiler(WithCacheSize(0))
	}
	var errs []error
	for _, d := range r.domains {
		for _, v := range d.Variants {
			if _, err := c.Compile(v); err != nil {
				errs = append(errs, fmt.Errorf("domain %q: %w", d.Key, err))
			}
		}
	}
	return errors.Join(errs...)
}

func validateDomain(d Domain) error {
	if d.Key == "" {
		return errors.New("domain key is empty")
	}
	if len(d.Variants) == 0 {
		return fmt.Errorf("domain %q has no variants", d.Key)
	}

	var errs []error
	ids := make(map[string]struct{}, len(d.Variants))
	for _, v := range d.Variants {
		if v.ID == "" {
			errs = append(errs, fmt.Errorf("domain %q: variant id is empty", d.Key))
			continue
		}
		if _, dup := ids[v.ID]; dup {
			errs = append(errs, fmt.Errorf("domain %q: duplicate variant id %q", d.Key, v.ID))
			continue
		}
		ids[v.ID] = struct{}{}

		if v.Source == "" {
			errs = append(errs, fmt.Errorf("domain %q: variant %q has an empty source", d.Key, v.ID))
		}

		expected := make(map[string]bool, len(v.Cases))
		for _, c := range v.Cases {
			if prev, seen := expected[c.Input]; seen && prev != c.Expected {
				errs = append(errs, fmt.Errorf("domain %q: variant %q: conflicting cases for input %q", d.Key, v.ID, c.Input))
			}
			expected[c.Input] = c.Expected
		}
	}
	return errors.Join(errs...)
}
