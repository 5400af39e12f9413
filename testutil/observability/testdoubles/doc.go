// Package testdoubles provides spies for the circulation observability interfaces:
//   - MetricsCollectorSpy: captures metrics recording calls for verification
//   - TracingCollectorSpy: captures spans with their start and end attributes
//   - ContextualLoggerSpy: captures structured logging calls with their context
//   - LogHandlerSpy: a slog.Handler capturing records, for components that log through slog
//
// The spies let tests assert on instrumentation without a telemetry backend.
package testdoubles
