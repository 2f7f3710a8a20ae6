package engine

import (
	"github.com/katalvlaran/nodedemon/graphstore"
	"github.com/katalvlaran/nodedemon/nodemetrics"
)

// DFSIterator performs a depth-first traversal of a graph one
// iteration at a time, started by NewDFS. It is not restartable.
type DFSIterator struct {
	g         *graphstore.Matrix
	end       string
	visited   map[string]bool
	processed []string
	stack     []string
	state     iterState
	metrics   *nodemetrics.Recorder
}

// NewDFS begins a depth-first traversal from start. If end is
// non-empty, the traversal stops as soon as end is popped. If start is
// unknown to g, the returned iterator yields no frames.
func NewDFS(g *graphstore.Matrix, start, end string, opts ...Option) *DFSIterator {
	cfg := newConfig(opts)
	it := &DFSIterator{g: g, end: end, metrics: cfg.metrics}
	if g == nil || !g.HasNode(start) {
		it.state = stateExhausted

		return it
	}
	it.visited = map[string]bool{start: true}
	it.processed = []string{}
	it.stack = []string{start}
	it.metrics.Started(algoDFS)

	return it
}

// Next advances the traversal by one iteration and returns the
// resulting frame, or ok=false if the iterator is already exhausted.
func (it *DFSIterator) Next() (DFSFrame, bool) {
	switch it.state {
	case stateNotStarted:
		it.state = stateRunning
		f := DFSFrame{Focus: it.stack[0], Processed: copyStrings(it.processed), Pending: copyStrings(it.stack)}
		it.metrics.Frame(algoDFS)

		return f, true

	case stateRunning:
		if len(it.stack) == 0 {
			it.state = stateExhausted
			it.metrics.Finished(algoDFS)
			f := DFSFrame{Focus: doneFocus, Processed: copyStrings(it.processed), Pending: nil}
			it.metrics.Frame(algoDFS)

			return f, true
		}
		last := len(it.stack) - 1
		current := it.stack[last]
		it.stack = it.stack[:last]
		it.processed = append(it.processed, current)

		if it.end != "" && current == it.end {
			it.state = stateExhausted
			it.metrics.Finished(algoDFS)
			f := DFSFrame{Focus: doneFocus, Processed: copyStrings(it.processed), Pending: copyStrings(it.stack)}
			it.metrics.Frame(algoDFS)

			return f, true
		}

		for _, nb := range it.g.Neighbors(current) {
			if !it.visited[nb.Name] {
				it.visited[nb.Name] = true
				it.stack = append(it.stack, nb.Name)
			}
		}
		f := DFSFrame{Focus: current, Processed: copyStrings(it.processed), Pending: copyStrings(it.stack)}
		it.metrics.Frame(algoDFS)

		return f, true

	default:
		return DFSFrame{}, false
	}
}
