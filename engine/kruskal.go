package engine

import (
	"sort"

	"github.com/katalvlaran/nodedemon/graphstore"
	"github.com/katalvlaran/nodedemon/nodemetrics"
)

// KruskalIterator builds a minimum spanning tree/forest one candidate
// edge at a time, started by NewKruskal. Only supported on weighted,
// undirected graphs. It is not restartable.
type KruskalIterator struct {
	candidates []MSTEdge
	idx        int
	parent     map[string]string
	rank       map[string]int
	edges      []MSTEdge
	state      iterState
	metrics    *nodemetrics.Recorder
}

// NewKruskal builds the sorted candidate edge list and begins
// evaluating it. For an undirected graph, (a,b) and (b,a) of equal
// weight collapse to a single candidate. If g is nil, unweighted, or
// directed, the returned iterator yields no frames.
func NewKruskal(g *graphstore.Matrix, opts ...Option) *KruskalIterator {
	cfg := newConfig(opts)
	it := &KruskalIterator{metrics: cfg.metrics}
	if g == nil || !g.Weighted() || g.Directed() {
		it.state = stateExhausted

		return it
	}
	names := g.Names()
	it.parent = make(map[string]string, len(names))
	it.rank = make(map[string]int, len(names))
	for _, n := range names {
		it.parent[n] = n
		it.rank[n] = 0
	}
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if w, ok := g.IsConnected(names[i], names[j]); ok {
				it.candidates = append(it.candidates, MSTEdge{From: names[i], To: names[j], Weight: w})
			}
		}
	}
	sort.SliceStable(it.candidates, func(a, b int) bool {
		return it.candidates[a].Weight < it.candidates[b].Weight
	})
	it.metrics.Started(algoKruskal)

	return it
}

func (it *KruskalIterator) find(u string) string {
	for it.parent[u] != u {
		it.parent[u] = it.parent[it.parent[u]]
		u = it.parent[u]
	}

	return u
}

func (it *KruskalIterator) union(u, v string) {
	ru, rv := it.find(u), it.find(v)
	if ru == rv {
		return
	}
	if it.rank[ru] < it.rank[rv] {
		it.parent[ru] = rv
	} else {
		it.parent[rv] = ru
		if it.rank[ru] == it.rank[rv] {
			it.rank[ru]++
		}
	}
}

func (it *KruskalIterator) snapshotParents() map[string]string {
	out := make(map[string]string, len(it.parent))
	for k, v := range it.parent {
		out[k] = v
	}

	return out
}

func (it *KruskalIterator) snapshotRanks() map[string]int {
	out := make(map[string]int, len(it.rank))
	for k, v := range it.rank {
		out[k] = v
	}

	return out
}

func (it *KruskalIterator) pendingFrom(idx int) []MSTEdge {
	return append([]MSTEdge(nil), it.candidates[idx:]...)
}

// Next advances the build by one candidate-edge evaluation and returns
// the resulting frame, or ok=false if the iterator is already
// exhausted.
func (it *KruskalIterator) Next() (KruskalFrame, bool) {
	switch it.state {
	case stateExhausted:
		return KruskalFrame{}, false

	case stateNotStarted:
		it.state = stateRunning
		var focus *MSTEdge
		if len(it.candidates) > 0 {
			e := it.candidates[0]
			focus = &e
		}
		f := KruskalFrame{FocusEdge: focus, Parents: it.snapshotParents(), Ranks: it.snapshotRanks(), Pending: it.pendingFrom(0)}
		it.metrics.Frame(algoKruskal)

		return f, true

	default:
		if it.idx >= len(it.candidates) {
			it.state = stateExhausted
			it.metrics.Finished(algoKruskal)
			f := KruskalFrame{FocusEdge: nil, Parents: it.snapshotParents(), Ranks: it.snapshotRanks(), Pending: nil, Edges: append([]MSTEdge(nil), it.edges...)}
			it.metrics.Frame(algoKruskal)

			return f, true
		}
		edge := it.candidates[it.idx]
		if it.find(edge.From) != it.find(edge.To) {
			it.union(edge.From, edge.To)
			it.edges = append(it.edges, edge)
		}
		it.idx++
		f := KruskalFrame{FocusEdge: &edge, Parents: it.snapshotParents(), Ranks: it.snapshotRanks(), Pending: it.pendingFrom(it.idx)}
		it.metrics.Frame(algoKruskal)

		return f, true
	}
}
