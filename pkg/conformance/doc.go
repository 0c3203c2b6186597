// Package conformance executes the pinned cases of every pattern variant and
// reports how each one fared.
//
// Run checks one variant and returns a Report with a Result per case. A case
// whose actual match differs from its expectation is a reported failure, not
// an error: every case runs. The only error Run returns is the variant's
// *pattern.CompileError.
//
// RunAll walks a whole registry. Domains share no mutable state, so they are
// checked concurrently through an errgroup bounded by WithParallelism. A
// compile failure is recorded in the Suite for that variant while the other
// variants and domains carry on. Context cancellation stops scheduling and is
// returned.
//
//	runner := conformance.New(conformance.WithLogger(log))
//	suite, err := runner.RunAll(ctx, catalog.Default())
//	for _, f := range suite.Failures() {
//	    fmt.Println(f)
//	}
//
// Each Suite carries a RunID which is also stored in the context handed to
// the logger, so RunIDExtractor can tag every record of a run.
package conformance
