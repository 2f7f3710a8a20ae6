package engine

import "github.com/katalvlaran/nodedemon/nodemetrics"

// iterState tracks where an iterator sits in the first/running/
// exhausted lifecycle shared by every algorithm in this package.
type iterState int

const (
	stateNotStarted iterState = iota
	stateRunning
	stateExhausted
)

const (
	algoBFS      = "bfs"
	algoDFS      = "dfs"
	algoPreOrder = "pre_order"
	algoInOrder  = "in_order"
	algoPostOrder = "post_order"
	algoDijkstra = "dijkstra"
	algoAStar    = "a_star"
	algoPrim     = "prim"
	algoKruskal  = "kruskal"
)

// config holds the options shared by every constructor in this
// package.
type config struct {
	metrics *nodemetrics.Recorder
}

// Option configures an algorithm iterator at construction time.
type Option func(*config)

// WithMetrics attaches a metrics recorder to the constructed iterator.
// Passing a nil recorder (or omitting this option) disables
// instrumentation.
func WithMetrics(r *nodemetrics.Recorder) Option {
	return func(c *config) { c.metrics = r }
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
