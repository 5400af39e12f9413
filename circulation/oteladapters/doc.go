// Package oteladapters provides OpenTelemetry implementations of the circulation observability
// interfaces: ContextualLogger, MetricsCollector (including the contextual variant), and TracingCollector.
//
// They are used by the server wiring to plug the SQL engine and the command and query handlers into
// the globally configured OpenTelemetry providers.
package oteladapters
