// Package httpserver runs an http.Handler with graceful shutdown and exposes
// liveness and readiness probes.
//
// Run blocks until the context is cancelled, SIGINT or SIGTERM is received,
// or Shutdown is called:
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    return err
//	}
//
// Listen and serve failures wrap ErrStart; failed graceful shutdowns wrap
// ErrShutdown.
package httpserver
