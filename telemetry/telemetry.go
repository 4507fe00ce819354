// Package telemetry provides hierarchical timing collection for operations.
//
// Collectors travel through context so that instrumentation stays
// non-intrusive: library code calls StartTimer with whatever context it was
// handed, and timing is only recorded when the caller installed a collector.
//
// Example usage:
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	timer := telemetry.StartTimer(ctx, "load journal")
//	// ... work ...
//	timer.End()
//
//	collector.Report(os.Stderr)
package telemetry

import (
	"context"
	"io"
)

// contextKey is a private type for context keys to avoid collisions
type contextKey struct{}

var collectorKey = contextKey{}

// Collector collects timing data for a tree of operations.
type Collector interface {
	// Start begins timing an operation and returns a Timer.
	// The timer must be ended with End() when the operation completes.
	Start(name string) Timer

	// Report writes the collected timings to w.
	Report(w io.Writer)
}

// Timer tracks a single operation's duration. Timers nest via Child.
type Timer interface {
	// End stops the timer and records the duration.
	End()

	// Child creates a nested timer under this one.
	Child(name string) Timer
}

// WithCollector returns a context carrying the given collector.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext extracts the collector from a context. When no collector is
// present it returns a no-op collector, so callers never need a nil check.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}

// StartTimer starts a timer on the context's collector. It is the usual
// entry point for instrumented library code.
func StartTimer(ctx context.Context, name string) Timer {
	return FromContext(ctx).Start(name)
}
