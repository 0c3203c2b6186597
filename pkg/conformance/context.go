package conformance

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/regexbook/pkg/logger"
)

type runIDKey struct{}

// WithRunID stores a run identifier in ctx.
func WithRunID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the run identifier stored by WithRunID.
func RunIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(runIDKey{}).(uuid.UUID)
	return id, ok
}

// RunIDExtractor is a logger.ContextExtractor that tags records with the run id.
func RunIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id, ok := RunIDFromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.RunID(id.String()), true
}
