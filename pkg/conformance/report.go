package conformance

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of one case.
type Result struct {
	Input    string `json:"input" yaml:"input"`
	Expected bool   `json:"expected" yaml:"expected"`
	Actual   bool   `json:"actual" yaml:"actual"`
	Pass     bool   `json:"pass" yaml:"pass"`
	Note     string `json:"note,omitempty" yaml:"note,omitempty"`
	Err      string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report holds the ordered results for one variant.
type Report struct {
	Domain   string        `json:"domain" yaml:"domain"`
	Variant  string        `json:"variant" yaml:"variant"`
	Source   string        `json:"source" yaml:"source"`
	Results  []Result      `json:"results" yaml:"results"`
	Passed   int           `json:"passed" yaml:"passed"`
	Failed   int           `json:"failed" yaml:"failed"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// OK reports whether every case passed.
func (r Report) OK() bool {
	return r.Failed == 0
}

// Failures returns the failing cases of the report.
func (r Report) Failures() []Failure {
	var out []Failure
	for _, res := range r.Results {
		if !res.Pass {
			out = append(out, Failure{
				Domain:   r.Domain,
				Variant:  r.Variant,
				Input:    res.Input,
				Expected: res.Expected,
				Actual:   res.Actual,
				Err:      res.Err,
			})
		}
	}
	return out
}

func (r *Report) add(res Result) {
	r.Results = append(r.Results, res)
	if res.Pass {
		r.Passed++
	} else {
		r.Failed++
	}
}

// Failure identifies a case whose actual result differs from its expectation.
type Failure struct {
	Domain   string `json:"domain" yaml:"domain"`
	Variant  string `json:"variant" yaml:"variant"`
	Input    string `json:"input" yaml:"input"`
	Expected bool   `json:"expected" yaml:"expected"`
	Actual   bool   `json:"actual" yaml:"actual"`
	Err      string `json:"error,omitempty" yaml:"error,omitempty"`
}

func (f Failure) String() string {
	s := fmt.Sprintf("%s/%s: input %q: expected %t, got %t", f.Domain, f.Variant, f.Input, f.Expected, f.Actual)
	if f.Err != "" {
		s += " (" + f.Err + ")"
	}
	return s
}

// CompileFailure is a variant that could not be checked because its source
// does not compile.
type CompileFailure struct {
	Domain  string `json:"domain" yaml:"domain"`
	Variant string `json:"variant" yaml:"variant"`
	Source  string `json:"source" yaml:"source"`
	Message string `json:"message" yaml:"message"`
	Err     error  `json:"-" yaml:"-"`
}

// Suite is the result of a RunAll.
type Suite struct {
	RunID         uuid.UUID           `json:"run_id" yaml:"run_id"`
	StartedAt     time.Time           `json:"started_at" yaml:"started_at"`
	Duration      time.Duration       `json:"duration" yaml:"duration"`
	Domains       []string            `json:"domains" yaml:"domains"`
	Reports       map[string][]Report `json:"reports" yaml:"reports"`
	CompileErrors []CompileFailure    `json:"compile_errors,omitempty" yaml:"compile_errors,omitempty"`
}

// Totals sums passed and failed cases over every report.
func (s Suite) Totals() (passed, failed int) {
	for _, key := range s.Domains {
		for _, r := range s.Reports[key] {
			passed += r.Passed
			failed += r.Failed
		}
	}
	return passed, failed
}

// OK reports whether every case passed and every variant compiled.
func (s Suite) OK() bool {
	_, failed := s.Totals()
	return failed == 0 && len(s.CompileErrors) == 0
}

// Failures lists every failing case in registry order.
func (s Suite) Failures() []Failure {
	var out []Failure
	for _, key := range s.Domains {
		for _, r := range s.Reports[key] {
			out = append(out, r.Failures()...)
		}
	}
	return out
}

// Summary is the compact form of a Suite used by the CLI and the API.
type Summary struct {
	RunID         uuid.UUID        `json:"run_id" yaml:"run_id"`
	OK            bool             `json:"ok" yaml:"ok"`
	Domains       int              `json:"domains" yaml:"domains"`
	Variants      int              `json:"variants" yaml:"variants"`
	Passed        int              `json:"passed" yaml:"passed"`
	Failed        int              `json:"failed" yaml:"failed"`
	Duration      time.Duration    `json:"duration" yaml:"duration"`
	Failures      []Failure        `json:"failures,omitempty" yaml:"failures,omitempty"`
	CompileErrors []CompileFailure `json:"compile_errors,omitempty" yaml:"compile_errors,omitempty"`
}

// Summary condenses the suite.
func (s Suite) Summary() Summary {
	passed, failed := s.Totals()
	variants := len(s.CompileErrors)
	for _, key := range s.Domains {
		variants += len(s.Reports[key])
	}
	return Summary{
		RunID:         s.RunID,
		OK:            s.OK(),
		Domains:       len(s.Domains),
		Variants:      variants,
		Passed:        passed,
		Failed:        failed,
		Duration:      s.Duration,
		Failures:      s.Failures(),
		CompileErrors: s.CompileErrors,
	}
}
