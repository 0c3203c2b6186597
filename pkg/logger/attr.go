package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Domain records a validation domain key under "domain".
func Domain(key string) slog.Attr {
	return slog.String("domain", key)
}

// Variant records a pattern variant id under "variant".
func Variant(id string) slog.Attr {
	return slog.String("variant", id)
}

// Source records pattern text under "source".
func Source(src string) slog.Attr {
	return slog.String("source", src)
}

// Input records a tested input under "input", quoted so empty and
// whitespace-only inputs stay visible.
func Input(s string) slog.Attr {
	return slog.String("input", strconv.Quote(s))
}

// Outcome records an expected/actual pair under "outcome".
func Outcome(expected, actual bool) slog.Attr {
	return Group("outcome", slog.Bool("expected", expected), slog.Bool("actual", actual))
}

// RunID records a conformance run identifier under "run_id".
// If id is nil, it returns an empty Attr.
func RunID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("run_id", id)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
