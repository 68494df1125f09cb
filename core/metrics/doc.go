// Package metrics exposes Prometheus collectors for readiness evaluations
// and diagnostics runs.
//
// Metrics implements readiness.Observer, and ObserveDiagnostics plugs into
// diagnostics.WithRunObserver. The HTTP server serves the registry on
// /metrics when server.metrics is enabled.
package metrics
