package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/regexbook/pkg/catalog"
	"github.com/dmitrymomot/regexbook/pkg/config"
	"github.com/dmitrymomot/regexbook/pkg/conformance"
	"github.com/dmitrymomot/regexbook/pkg/logger"
	"github.com/dmitrymomot/regexbook/pkg/metrics"
	"github.com/dmitrymomot/regexbook/pkg/pattern"
	"github.com/dmitrymomot/regexbook/pkg/requestid"
)

const serviceName = "regexbook"

// errConformanceFailed makes check exit non-zero without printing usage.
var errConformanceFailed = errors.New("conformance check failed")

type rootFlags struct {
	envFiles  []string
	logLevel  string
	logFormat string
}

// app holds what every subcommand needs, built once flags are parsed.
type app struct {
	flags    rootFlags
	log      *slog.Logger
	registry *pattern.Registry
	compiler *pattern.Compiler
	runner   *conformance.Runner
	metrics  *metrics.Metrics
	prom     *prometheus.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "regexbook",
		Short: "Catalogue of validation regexes with conformance tables",
		Long: `regexbook publishes regular expressions for common input formats
(email, phone, dates, card numbers, paths, ...) together with the
inputs each one must accept or reject, and checks that they still do.

Commands:
  list     - list domains and variants
  show     - print a variant with its cases and code snippets
  match    - test inputs against a variant
  check    - run the conformance suite
  export   - dump the catalogue as JSON or YAML
  serve    - run the HTTP API`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringSliceVar(&a.flags.envFiles, "env-file", nil, "Load variables from these .env files first")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides LOG_LEVEL")
	root.PersistentFlags().StringVar(&a.flags.logFormat, "log-format", "", "Log format (json, text); overrides LOG_FORMAT")

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newMatchCmd(a),
		newCheckCmd(a),
		newExportCmd(a),
		newServeCmd(a),
	)
	return root
}

// Execute runs the CLI and prints any error to stderr.
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil && !errors.Is(err, errConformanceFailed) {
		printError(err)
	}
	return err
}

func (a *app) setup(cmd *cobra.Command) error {
	if len(a.flags.envFiles) > 0 {
		if err := config.LoadEnv(a.flags.envFiles...); err != nil {
			return err
		}
	}

	var logCfg logger.Config
	if err := config.Load(&logCfg); err != nil {
		return fmt.Errorf("logger config: %w", err)
	}
	if a.flags.logLevel != "" {
		logCfg.Level = a.flags.logLevel
	}
	if a.flags.logFormat != "" {
		logCfg.Format = a.flags.logFormat
	}
	log, err := logger.NewFromConfig(logCfg, serviceName,
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(conformance.RunIDExtractor, requestid.Extractor),
	)
	if err != nil {
		return err
	}
	a.log = log

	var patternCfg pattern.Config
	if err := config.Load(&patternCfg); err != nil {
		return fmt.Errorf("pattern config: %w", err)
	}
	var runnerCfg conformance.Config
	if err := config.Load(&runnerCfg); err != nil {
		return fmt.Errorf("conformance config: %w", err)
	}

	a.prom = prometheus.NewRegistry()
	a.metrics = metrics.New(a.prom)
	a.registry = catalog.Default()
	a.compiler = pattern.NewCompilerFromConfig(patternCfg)
	metrics.RegisterCompilerStats(a.prom, a.compiler)
	a.runner = conformance.NewFromConfig(runnerCfg,
		conformance.WithCompiler(a.compiler),
		conformance.WithLogger(a.log),
		conformance.WithRecorder(a.metrics),
	)
	return nil
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
