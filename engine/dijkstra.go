package engine

import (
	"container/heap"

	"github.com/katalvlaran/nodedemon/graphstore"
	"github.com/katalvlaran/nodedemon/nodemetrics"
)

// DijkstraIterator computes single-source shortest paths one
// iteration at a time, started by NewDijkstra. Only supported on
// weighted graphs. It is not restartable.
type DijkstraIterator struct {
	g       *graphstore.Matrix
	end     string
	dist    map[string]int
	prev    map[string]string
	hasPrev map[string]bool
	visited map[string]bool
	pq      nodePQ
	state   iterState
	metrics *nodemetrics.Recorder
}

// NewDijkstra begins a Dijkstra run from start. If end is non-empty,
// the run stops and reconstructs a path as soon as end is popped from
// the frontier. If start is unknown, or g is not weighted, the
// returned iterator yields no frames.
func NewDijkstra(g *graphstore.Matrix, start, end string, opts ...Option) *DijkstraIterator {
	cfg := newConfig(opts)
	it := &DijkstraIterator{g: g, end: end, metrics: cfg.metrics}
	if g == nil || !g.Weighted() || !g.HasNode(start) {
		it.state = stateExhausted

		return it
	}
	it.dist = map[string]int{start: 0}
	it.prev = map[string]string{}
	it.hasPrev = map[string]bool{}
	it.visited = map[string]bool{}
	it.pq = nodePQ{{node: start, cost: 0}}
	it.metrics.Started(algoDijkstra)

	return it
}

func (it *DijkstraIterator) snapshot() map[string]DijkstraEntry {
	out := make(map[string]DijkstraEntry, len(it.dist))
	for n, c := range it.dist {
		out[n] = DijkstraEntry{Cost: c, Predecessor: it.prev[n], HasPredecessor: it.hasPrev[n]}
	}

	return out
}

func (it *DijkstraIterator) reconstructPath(target string) []string {
	var path []string
	cur := target
	for {
		path = append([]string{cur}, path...)
		if !it.hasPrev[cur] {
			break
		}
		cur = it.prev[cur]
	}

	return path
}

// Next advances the run by one heap pop and returns the resulting
// frame, or ok=false if the iterator is already exhausted.
func (it *DijkstraIterator) Next() (DijkstraFrame, bool) {
	switch it.state {
	case stateExhausted:
		return DijkstraFrame{}, false

	case stateNotStarted:
		it.state = stateRunning
		f := DijkstraFrame{Focus: it.pq[0].node, Processed: it.snapshot(), Pending: it.pq.snapshot()}
		it.metrics.Frame(algoDijkstra)

		return f, true

	default:
		for {
			if len(it.pq) == 0 {
				it.state = stateExhausted
				it.metrics.Finished(algoDijkstra)
				f := DijkstraFrame{Focus: doneFocus, Processed: it.snapshot(), Pending: nil}
				it.metrics.Frame(algoDijkstra)

				return f, true
			}
			item := heap.Pop(&it.pq).(nodeItem)
			if it.visited[item.node] {
				continue
			}
			it.visited[item.node] = true

			if it.end != "" && item.node == it.end {
				it.state = stateExhausted
				it.metrics.Finished(algoDijkstra)
				f := DijkstraFrame{Focus: doneFocus, Processed: it.snapshot(), Pending: it.pq.snapshot(), Path: it.reconstructPath(item.node)}
				it.metrics.Frame(algoDijkstra)

				return f, true
			}

			for _, nb := range it.g.Neighbors(item.node) {
				if it.visited[nb.Name] {
					continue
				}
				newCost := it.dist[item.node] + nb.Value
				old, known := it.dist[nb.Name]
				if !known || newCost < old {
					it.dist[nb.Name] = newCost
					it.prev[nb.Name] = item.node
					it.hasPrev[nb.Name] = true
					heap.Push(&it.pq, nodeItem{node: nb.Name, cost: newCost})
				}
			}

			f := DijkstraFrame{Focus: item.node, Processed: it.snapshot(), Pending: it.pq.snapshot()}
			it.metrics.Frame(algoDijkstra)

			return f, true
		}
	}
}
