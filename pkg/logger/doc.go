// Package logger builds the slog loggers used by the catalogue CLI and API.
//
// New returns a *slog.Logger configured through Option functions: output
// format (text or json), minimum level, static attributes and ContextExtractor
// callbacks that copy request- or run-scoped values from a context.Context
// into every record. NewFromConfig does the same from an env-loaded Config.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler and wraps it in
// LogHandlerDecorator, which runs the registered extractors on each Handle
// call. Helpers in attr.go (Domain, Variant, RunID, Error, ...) keep attribute
// keys consistent across packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "regexbook"),
//	    logger.WithContextExtractors(conformance.RunIDExtractor),
//	)
//	log.WarnContext(ctx, "case mismatch",
//	    logger.Domain("email"),
//	    logger.Variant("recommended"),
//	    logger.Input("abc..def@example.com"),
//	)
//
// # Error Handling
//
// Error and Errors return an empty attribute for nil errors, so callers can
// pass them unconditionally. WithFormat and ParseFormat reject unknown formats.
package logger
