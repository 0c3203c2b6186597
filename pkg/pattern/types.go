package pattern

import "slices"

// Case is a pinned example for a Variant: whether Input is expected to match
// the whole pattern.
type Case struct {
	Input    string `json:"input" yaml:"input"`
	Expected bool   `json:"expected" yaml:"expected"`
	Note     string `json:"note,omitempty" yaml:"note,omitempty"`
}

// Variant is one regular expression answering "does this string satisfy the
// rule" for its domain.
type Variant struct {
	ID              string `json:"id" yaml:"id"`
	Title           string `json:"title" yaml:"title"`
	Source          string `json:"source" yaml:"source"`
	CaseInsensitive bool   `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty"`
	Description     string `json:"description,omitempty" yaml:"description,omitempty"`
	Cases           []Case `json:"cases" yaml:"cases"`
}

// Domain is a named real-world validation category.
type Domain struct {
	Key         string    `json:"key" yaml:"key"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Variants    []Variant `json:"variants" yaml:"variants"`
}

// Variant returns the variant with the given id.
func (d Domain) Variant(id string) (Variant, bool) {
	for _, v := range d.Variants {
		if v.ID == id {
			return v.clone(), true
		}
	}
	return Variant{}, false
}

// VariantIDs returns variant ids in declaration order.
func (d Domain) VariantIDs() []string {
	ids := make([]string, 0, len(d.Variants))
	for _, v := range d.Variants {
		ids = append(ids, v.ID)
	}
	return ids
}

func (v Variant) clone() Variant {
	v.Cases = slices.Clone(v.Cases)
	return v
}

func (d Domain) clone() Domain {
	variants := make([]Variant, len(d.Variants))
	for i, v := range d.Variants {
		variants[i] = v.clone()
	}
	d.Variants = variants
	return d
}
