// Package metrics wraps engine.Compute with timing and telemetry,
// restoring it as an outer collaborator rather than folding it into the
// engine's signature. It exposes Prometheus counters/histograms for
// dashboards and an OpenTelemetry span per call, tagged with a
// google/uuid run identifier so a single Compute invocation can be
// traced end to end across logs, metrics, and spans.
//
// Config/NewCollector follow a struct-of-resolved-instruments-behind-a-
// constructor shape: a Config describes names and a tracer, NewCollector
// resolves them into live Prometheus instruments registered against a
// caller-supplied Registerer.
package metrics
