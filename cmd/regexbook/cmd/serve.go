package cmd

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/regexbook/pkg/api"
	"github.com/dmitrymomot/regexbook/pkg/config"
	"github.com/dmitrymomot/regexbook/pkg/httpserver"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalogue over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var httpCfg httpserver.Config
			if err := config.Load(&httpCfg); err != nil {
				return fmt.Errorf("http config: %w", err)
			}
			if addr != "" {
				httpCfg.Addr = addr
			}

			srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(a.log))
			return srv.Run(cmd.Context(), a.router())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address; overrides REGEXBOOK_HTTP_ADDR")
	return cmd
}

// router mounts the API next to the probes and metrics.
func (a *app) router() http.Handler {
	r := chi.NewRouter()
	r.Get("/health/live", httpserver.HealthCheckHandler(a.log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(a.log, func(context.Context) error {
		return a.registry.Validate(a.compiler)
	}))
	r.Handle("/metrics", promhttp.HandlerFor(a.prom, promhttp.HandlerOpts{}))
	r.Mount("/", api.New(a.registry,
		api.WithCompiler(a.compiler),
		api.WithRunner(a.runner),
		api.WithMetrics(a.metrics),
		api.WithLogger(a.log),
	).Routes())
	return r
}
