// Package metrics exposes Prometheus collectors for conformance runs, pattern
// matching and the matcher cache.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/regexbook/pkg/pattern"
)

// Values of the MatchLatency "source" label.
const (
	SourceConformance = "conformance"
	SourceAPI         = "api"
)

// Metrics provides observability for the catalogue.
type Metrics struct {
	// Conformance case outcomes by domain, variant and result
	CaseOutcome *prometheus.CounterVec

	// Variants whose source failed to compile
	CompileErrors *prometheus.CounterVec

	// Match latency by domain and source (conformance case or API request)
	MatchLatency *prometheus.HistogramVec

	// Full conformance run duration
	SuiteDuration prometheus.Histogram

	// Ad-hoc match requests served by the API by domain, variant and outcome
	MatchRequests *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CaseOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "regexbook_conformance_cases_total",
			Help: "Conformance cases checked by domain, variant and result",
		}, []string{"domain", "variant", "result"}), // result: "pass", "fail"

		CompileErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "regexbook_pattern_compile_errors_total",
			Help: "Variants whose source failed to compile",
		}, []string{"domain", "variant"}),

		MatchLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "regexbook_match_duration_seconds",
			Help:    "Duration of a single full-string match by domain and source",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.25},
		}, []string{"domain", "source"}),

		SuiteDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "regexbook_conformance_run_duration_seconds",
			Help:    "Duration of a full conformance run",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),

		MatchRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "regexbook_match_requests_total",
			Help: "Match requests served by domain, variant and outcome",
		}, []string{"domain", "variant", "matched"}),
	}
}

// ObserveCase records one conformance case.
func (m *Metrics) ObserveCase(domain, variant string, pass bool, d time.Duration) {
	if m == nil {
		return
	}
	result := "pass"
	if !pass {
		result = "fail"
	}
	m.CaseOutcome.WithLabelValues(domain, variant, result).Inc()
	m.MatchLatency.WithLabelValues(domain, SourceConformance).Observe(d.Seconds())
}

// ObserveCompileError records a variant that failed to compile.
func (m *Metrics) ObserveCompileError(domain, variant string) {
	if m != nil {
		m.CompileErrors.WithLabelValues(domain, variant).Inc()
	}
}

// ObserveSuite records the duration of a full run.
func (m *Metrics) ObserveSuite(_, _ int, d time.Duration) {
	if m != nil {
		m.SuiteDuration.Observe(d.Seconds())
	}
}

// ObserveMatch records an API match request.
func (m *Metrics) ObserveMatch(domain, variant string, matched bool, d time.Duration) {
	if m == nil {
		return
	}
	m.MatchRequests.WithLabelValues(domain, variant, strconv.FormatBool(matched)).Inc()
	m.MatchLatency.WithLabelValues(domain, SourceAPI).Observe(d.Seconds())
}

// RegisterCompilerStats exports the compiler's matcher cache counters.
func RegisterCompilerStats(reg prometheus.Registerer, c *pattern.Compiler) {
	factory := promauto.With(reg)
	factory.NewCounterFunc(prometheus.CounterOpts{
		Name: "regexbook_matcher_cache_hits_total",
		Help: "Compiled matcher cache hits",
	}, func() float64 { return float64(c.Stats().Hits) })
	factory.NewCounterFunc(prometheus.CounterOpts{
		Name: "regexbook_matcher_cache_misses_total",
		Help: "Compiled matcher cache misses",
	}, func() float64 { return float64(c.Stats().Misses) })
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "regexbook_matcher_cache_entries",
		Help: "Compiled matchers currently cached",
	}, func() float64 { return float64(c.Stats().Len) })
}
