package telemetry

import "io"

// noOpCollector is the Collector FromContext returns when nothing was
// attached to the context — zero overhead when telemetry is disabled.
type noOpCollector struct{}

func (noOpCollector) Start(name string) Timer { return noOpTimer{} }
func (noOpCollector) Report(w io.Writer)      {}

type noOpTimer struct{}

func (noOpTimer) End()                   {}
func (noOpTimer) Child(name string) Timer { return noOpTimer{} }

var (
	_ Collector = noOpCollector{}
	_ Timer     = noOpTimer{}
)
