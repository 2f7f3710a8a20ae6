package engine

import (
	"github.com/katalvlaran/nodedemon/graphstore"
	"github.com/katalvlaran/nodedemon/nodemetrics"
)

// BFSIterator performs a breadth-first traversal of a graph one
// iteration at a time, started by NewBFS. It is not restartable.
type BFSIterator struct {
	g         *graphstore.Matrix
	end       string
	visited   map[string]bool
	processed []string
	queue     []string
	state     iterState
	metrics   *nodemetrics.Recorder
}

// NewBFS begins a breadth-first traversal from start. If end is
// non-empty, the traversal stops as soon as end is popped. If start is
// unknown to g, the returned iterator yields no frames.
func NewBFS(g *graphstore.Matrix, start, end string, opts ...Option) *BFSIterator {
	cfg := newConfig(opts)
	it := &BFSIterator{g: g, end: end, metrics: cfg.metrics}
	if g == nil || !g.HasNode(start) {
		it.state = stateExhausted

		return it
	}
	it.visited = map[string]bool{start: true}
	it.processed = []string{}
	it.queue = []string{start}
	it.metrics.Started(algoBFS)

	return it
}

// Next advances the traversal by one iteration and returns the
// resulting frame, or ok=false if the iterator is already exhausted.
func (it *BFSIterator) Next() (BFSFrame, bool) {
	switch it.state {
	case stateNotStarted:
		it.state = stateRunning
		f := BFSFrame{Focus: it.queue[0], Processed: copyStrings(it.processed), Pending: copyStrings(it.queue)}
		it.metrics.Frame(algoBFS)

		return f, true

	case stateRunning:
		if len(it.queue) == 0 {
			it.state = stateExhausted
			it.metrics.Finished(algoBFS)
			f := BFSFrame{Focus: doneFocus, Processed: copyStrings(it.processed), Pending: nil}
			it.metrics.Frame(algoBFS)

			return f, true
		}
		current := it.queue[0]
		it.queue = it.queue[1:]
		it.processed = append(it.processed, current)

		if it.end != "" && current == it.end {
			it.state = stateExhausted
			it.metrics.Finished(algoBFS)
			f := BFSFrame{Focus: doneFocus, Processed: copyStrings(it.processed), Pending: copyStrings(it.queue)}
			it.metrics.Frame(algoBFS)

			return f, true
		}

		for _, nb := range it.g.Neighbors(current) {
			if !it.visited[nb.Name] {
				it.visited[nb.Name] = true
				it.queue = append(it.queue, nb.Name)
			}
		}
		f := BFSFrame{Focus: current, Processed: copyStrings(it.processed), Pending: copyStrings(it.queue)}
		it.metrics.Frame(algoBFS)

		return f, true

	default:
		return BFSFrame{}, false
	}
}

func copyStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)

	return out
}
