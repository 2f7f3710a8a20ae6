// Package nodemetrics exposes Prometheus instrumentation for the
// algorithm engine: how many frames each algorithm has emitted, and
// how many iterators are currently live. It is optional — every
// engine constructor accepts a *Recorder through its WithMetrics
// option; when the option is omitted or the recorder is nil,
// instrumentation is skipped entirely.
package nodemetrics
