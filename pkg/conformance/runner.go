package conformance

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/regexbook/pkg/logger"
	"github.com/dmitrymomot/regexbook/pkg/pattern"
)

// Config holds runner settings loaded from the environment.
type Config struct {
	Parallelism int `env:"REGEXBOOK_CONFORMANCE_PARALLELISM" envDefault:"4"` // Parallelism is the number of domains checked at once.
}

// Recorder receives runner observations. *metrics.Metrics implements it.
type Recorder interface {
	ObserveCase(domain, variant string, pass bool, d time.Duration)
	ObserveCompileError(domain, variant string)
	ObserveSuite(passed, failed int, d time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) ObserveCase(string, string, bool, time.Duration) {}
func (noopRecorder) ObserveCompileError(string, string)               {}
func (noopRecorder) ObserveSuite(int, int, time.Duration)             {}

// Option configures a Runner.
type Option func(*Runner)

// WithCompiler shares a compiler (and its matcher cache) with the runner.
func WithCompiler(c *pattern.Compiler) Option {
	return func(r *Runner) {
		if c != nil {
			r.compiler = c
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

func WithRecorder(rec Recorder) Option {
	return func(r *Runner) {
		if rec != nil {
			r.recorder = rec
		}
	}
}

// WithParallelism bounds how many domains RunAll checks at once. Values
// below one are treated as one.
func WithParallelism(n int) Option {
	return func(r *Runner) {
		r.parallelism = max(n, 1)
	}
}

// Runner checks variants against their conformance cases.
// It is safe for concurrent use.
type Runner struct {
	compiler    *pattern.Compiler
	log         *slog.Logger
	recorder    Recorder
	parallelism int
	now         func() time.Time
}

// New returns a Runner with a private compiler, a discarding logger and a
// parallelism of 4.
func New(opts ...Option) *Runner {
	r := &Runner{
		log:         slog.New(slog.DiscardHandler),
		recorder:    noopRecorder{},
		parallelism: 4,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.compiler == nil {
		r.compiler = pattern.NewCompiler()
	}
	r.log = r.log.With(logger.Component("conformance"))
	return r
}

// NewFromConfig creates a Runner from cfg; opts are applied afterwards.
func NewFromConfig(cfg Config, opts ...Option) *Runner {
	return New(append([]Option{WithParallelism(cfg.Parallelism)}, opts...)...)
}

// Run checks every case of v. The returned error is non-nil only when v does
// not compile or ctx is done; in the latter case the partial report is returned.
func (r *Runner) Run(ctx context.Context, domain string, v pattern.Variant) (Report, error) {
	return r.RunCases(ctx, domain, v, v.Cases)
}

// RunCases checks cases against v instead of v's own table.
func (r *Runner) RunCases(ctx context.Context, domain string, v pattern.Variant, cases []pattern.Case) (Report, error) {
	report := Report{
		Domain:  domain,
		Variant: v.ID,
		Source:  v.Source,
		Results: make([]Result, 0, len(cases)),
	}

	m, err := r.compiler.Compile(v)
	if err != nil {
		r.recorder.ObserveCompileError(domain, v.ID)
		r.log.ErrorContext(ctx, "pattern does not compile",
			logger.Domain(domain),
			logger.Variant(v.ID),
			logger.Source(v.Source),
			logger.Error(err),
		)
		return report, err
	}

	start := r.now()
	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			report.Duration = r.now().Sub(start)
			return report, err
		}

		caseStart := r.now()
		actual, matchErr := m.Match(c.Input)
		res := Result{
			Input:    c.Input,
			Expected: c.Expected,
			Actual:   actual,
			Pass:     matchErr == nil && actual == c.Expected,
			Note:     c.Note,
		}
		if matchErr != nil {
			res.Err = matchErr.Error()
		}
		report.add(res)
		r.recorder.ObserveCase(domain, v.ID, res.Pass, r.now().Sub(caseStart))

		if !res.Pass {
			r.log.WarnContext(ctx, "conformance case failed",
				logger.Domain(domain),
				logger.Variant(v.ID),
				logger.Input(c.Input),
				logger.Outcome(c.Expected, actual),
				logger.Error(matchErr),
			)
		}
	}
	report.Duration = r.now().Sub(start)

	r.log.DebugContext(ctx, "variant checked",
		logger.Domain(domain),
		logger.Variant(v.ID),
		slog.Int("passed", report.Passed),
		slog.Int("failed", report.Failed),
	)
	return report, nil
}

// RunAll checks every variant of every domain in reg.
func (r *Runner) RunAll(ctx context.Context, reg *pattern.Registry) (Suite, error) {
	return r.RunDomains(ctx, reg.Domains())
}

// RunDomains checks every variant of the given domains. Domains run
// concurrently; results keep the given order.
func (r *Runner) RunDomains(ctx context.Context, domains []pattern.Domain) (Suite, error) {
	runID := uuid.New()
	ctx = WithRunID(ctx, runID)

	suite := Suite{
		RunID:     runID,
		StartedAt: r.now(),
		Domains:   make([]string, len(domains)),
		Reports:   make(map[string][]Report, len(domains)),
	}

	reports := make([][]Report, len(domains))
	compileErrs := make([][]CompileFailure, len(domains))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)

	for i, d := range domains {
		suite.Domains[i] = d.Key
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for _, v := range d.Variants {
				report, err := r.Run(gctx, d.Key, v)
				var compileErr *pattern.CompileError
				switch {
				case errors.As(err, &compileErr):
					compileErrs[i] = append(compileErrs[i], CompileFailure{
						Domain:  d.Key,
						Variant: v.ID,
						Source:  v.Source,
						Message: compileErr.Err.Error(),
						Err:     err,
					})
					continue
				case err != nil:
					return err
				}
				reports[i] = append(reports[i], report)
			}
			return nil
		})
	}

	err := g.Wait()

	for i, key := range suite.Domains {
		suite.Reports[key] = reports[i]
		suite.CompileErrors = append(suite.CompileErrors, compileErrs[i]...)
	}
	suite.Duration = r.now().Sub(suite.StartedAt)

	passed, failed := suite.Totals()
	r.recorder.ObserveSuite(passed, failed, suite.Duration)

	if err != nil {
		r.log.WarnContext(ctx, "conformance run interrupted", logger.Error(err))
		return suite, err
	}

	level := slog.LevelInfo
	if !suite.OK() {
		level = slog.LevelError
	}
	r.log.Log(ctx, level, "conformance run finished",
		slog.Int("domains", len(suite.Domains)),
		slog.Int("passed", passed),
		slog.Int("failed", failed),
		slog.Int("compile_errors", len(suite.CompileErrors)),
		logger.Duration(suite.Duration),
	)
	return suite, nil
}
