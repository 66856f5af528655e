// Package telemetry provides hierarchical timing collection for operations.
// It allows tracking operation durations in a tree structure for detailed
// performance analysis.
//
// The telemetry system uses the context pattern for non-intrusive
// instrumentation. Collectors are passed through context and can be enabled
// or disabled without changing function signatures.
//
// Example usage:
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	timer := collector.Start("lex+parse")
//	defer timer.End()
//
//	collector.Report(os.Stderr)
package telemetry

import (
	"context"
	"io"
)

type contextKey int

const collectorKey contextKey = iota

// Collector is the main interface for collecting telemetry data.
//
// Implementations must be safe for concurrent use: multiple goroutines can
// call Start() simultaneously. Individual Timer instances returned by Start
// are not themselves safe for concurrent use — a timer and its children
// belong to a single goroutine.
type Collector interface {
	// Start begins timing an operation and returns a Timer.
	Start(name string) Timer

	// Report writes the collected timing tree to w.
	Report(w io.Writer)
}

// Timer tracks a single operation's timing. Timers nest via Child.
type Timer interface {
	// End stops the timer and records its duration.
	End()

	// Child creates a nested timer under this one.
	Child(name string) Timer
}

// WithCollector attaches collector to ctx.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext extracts the collector attached to ctx, or a no-op collector
// if none was attached — callers never need a nil check.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}
