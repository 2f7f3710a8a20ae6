package nodemetrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the Prometheus collectors shared by every running
// algorithm iterator. A nil *Recorder is valid: every method is a
// no-op on a nil receiver, so instrumentation is opt-in.
type Recorder struct {
	framesEmitted   *prometheus.CounterVec
	activeIterators prometheus.Gauge
}

// NewRecorder registers the counter and gauge against reg and returns
// a Recorder wired to them. Pass prometheus.NewRegistry() for an
// isolated registry, or prometheus.DefaultRegisterer to publish on the
// process-wide default registry.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		framesEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nodedemon_frames_emitted_total",
			Help: "Total number of algorithm frames emitted, labeled by algorithm.",
		}, []string{"algorithm"}),
		activeIterators: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "nodedemon_active_iterators",
			Help: "Number of algorithm iterators currently live.",
		}),
	}
	reg.MustRegister(r.framesEmitted, r.activeIterators)

	return r
}

// Started records that a new iterator for algorithm has begun.
func (r *Recorder) Started(algorithm string) {
	if r == nil {
		return
	}
	r.activeIterators.Inc()
}

// Finished records that an iterator for algorithm has been exhausted.
func (r *Recorder) Finished(algorithm string) {
	if r == nil {
		return
	}
	r.activeIterators.Dec()
}

// Frame records one emitted frame for algorithm.
func (r *Recorder) Frame(algorithm string) {
	if r == nil {
		return
	}
	r.framesEmitted.WithLabelValues(algorithm).Inc()
}
