package engine

import (
	"github.com/katalvlaran/nodedemon/graphstore"
	"github.com/katalvlaran/nodedemon/nodemetrics"
)

// PrimIterator grows a minimum spanning tree outward from a starting
// vertex one node at a time, started by NewPrim. Only supported on
// weighted, undirected graphs. It is not restartable.
type PrimIterator struct {
	g         *graphstore.Matrix
	inMST     map[string]bool
	keyValue  map[string]int
	hasKey    map[string]bool
	parent    map[string]string
	hasParent map[string]bool
	edges     []MSTEdge
	start     string
	state     iterState
	metrics   *nodemetrics.Recorder
}

// NewPrim begins growing an MST from start. If start is empty, the
// first node in insertion order is used (the source's random choice
// is replaced with a deterministic default, per design notes). If g is
// nil, unweighted, directed, or empty, the returned iterator yields no
// frames.
func NewPrim(g *graphstore.Matrix, start string, opts ...Option) *PrimIterator {
	cfg := newConfig(opts)
	it := &PrimIterator{g: g, metrics: cfg.metrics}
	if g == nil || !g.Weighted() || g.Directed() || g.IsEmpty() {
		it.state = stateExhausted

		return it
	}
	if start == "" {
		start = g.Names()[0]
	}
	if !g.HasNode(start) {
		it.state = stateExhausted

		return it
	}
	it.start = start
	it.inMST = map[string]bool{}
	it.keyValue = map[string]int{start: 0}
	it.hasKey = map[string]bool{start: true}
	it.parent = map[string]string{}
	it.hasParent = map[string]bool{}
	it.metrics.Started(algoPrim)

	return it
}

func (it *PrimIterator) snapshotKey() map[string]int {
	out := make(map[string]int, len(it.keyValue))
	for n, v := range it.keyValue {
		if it.hasKey[n] {
			out[n] = v
		}
	}

	return out
}

func (it *PrimIterator) snapshotParent() map[string]string {
	out := make(map[string]string, len(it.parent))
	for n, v := range it.parent {
		if it.hasParent[n] {
			out[n] = v
		}
	}

	return out
}

func (it *PrimIterator) snapshotInMST() map[string]bool {
	out := make(map[string]bool, len(it.inMST))
	for n, v := range it.inMST {
		out[n] = v
	}

	return out
}

// pickCheapest returns the not-yet-in-MST node with the smallest known
// key value, in Names() order for determinism on ties.
func (it *PrimIterator) pickCheapest() (string, bool) {
	best := ""
	bestKey := 0
	found := false
	for _, n := range it.g.Names() {
		if it.inMST[n] || !it.hasKey[n] {
			continue
		}
		if !found || it.keyValue[n] < bestKey {
			best = n
			bestKey = it.keyValue[n]
			found = true
		}
	}

	return best, found
}

func (it *PrimIterator) doneFrame() PrimFrame {
	it.metrics.Frame(algoPrim)

	return PrimFrame{Focus: doneFocus, InMST: it.snapshotInMST(), KeyValue: it.snapshotKey(), Parent: it.snapshotParent(), Edges: append([]MSTEdge(nil), it.edges...)}
}

// Next advances the MST by one accepted vertex and returns the
// resulting frame, or ok=false if the iterator is already exhausted.
func (it *PrimIterator) Next() (PrimFrame, bool) {
	switch it.state {
	case stateExhausted:
		return PrimFrame{}, false

	case stateNotStarted:
		it.state = stateRunning
		f := PrimFrame{Focus: it.start, InMST: map[string]bool{}, KeyValue: it.snapshotKey(), Parent: map[string]string{}}
		it.metrics.Frame(algoPrim)

		return f, true

	default:
		u, found := it.pickCheapest()
		if !found {
			it.state = stateExhausted
			it.metrics.Finished(algoPrim)

			return it.doneFrame(), true
		}
		it.inMST[u] = true
		if it.hasParent[u] {
			it.edges = append(it.edges, MSTEdge{From: it.parent[u], To: u, Weight: it.keyValue[u]})
		}
		for _, nb := range it.g.Neighbors(u) {
			if it.inMST[nb.Name] {
				continue
			}
			if !it.hasKey[nb.Name] || nb.Value < it.keyValue[nb.Name] {
				it.keyValue[nb.Name] = nb.Value
				it.hasKey[nb.Name] = true
				it.parent[nb.Name] = u
				it.hasParent[nb.Name] = true
			}
		}
		f := PrimFrame{Focus: u, InMST: it.snapshotInMST(), KeyValue: it.snapshotKey(), Parent: it.snapshotParent()}
		it.metrics.Frame(algoPrim)

		return f, true
	}
}
