package engine

import (
	"container/heap"

	"github.com/katalvlaran/nodedemon/graphstore"
	"github.com/katalvlaran/nodedemon/nodemetrics"
)

// Heuristic estimates the remaining cost from a to b. It must return a
// nonnegative value; admissibility (never overestimating the true
// remaining cost) is the caller's responsibility.
type Heuristic func(a, b string) int

// ZeroHeuristic is the trivially admissible heuristic that always
// estimates zero remaining cost, degrading A* to Dijkstra.
func ZeroHeuristic(string, string) int { return 0 }

// ASCIIHeuristic estimates remaining cost as the absolute difference
// between the ordinal values of a's and b's last characters. It is
// only admissible when node names encode relative position (e.g. a
// grid labeled by column letter), but is a reasonable default for
// generic labeled graphs in a pedagogical setting.
func ASCIIHeuristic(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	da := int(a[len(a)-1])
	db := int(b[len(b)-1])
	if da > db {
		return da - db
	}

	return db - da
}

// AStarIterator computes a heuristic-guided shortest path to a
// required end node one iteration at a time, started by NewAStar.
// Only supported on weighted graphs. It is not restartable.
type AStarIterator struct {
	g        *graphstore.Matrix
	end      string
	h        Heuristic
	gScore   map[string]int
	fScore   map[string]int
	cameFrom map[string]string
	hasCame  map[string]bool
	closed   map[string]bool
	open     nodePQ
	state    iterState
	metrics  *nodemetrics.Recorder
}

// NewAStar begins an A* run from start to end using heuristic h. If
// start or end is unknown, end is empty, or g is not weighted, the
// returned iterator yields no frames.
func NewAStar(g *graphstore.Matrix, start, end string, h Heuristic, opts ...Option) *AStarIterator {
	cfg := newConfig(opts)
	it := &AStarIterator{g: g, end: end, h: h, metrics: cfg.metrics}
	if g == nil || !g.Weighted() || end == "" || !g.HasNode(start) || !g.HasNode(end) {
		it.state = stateExhausted

		return it
	}
	it.gScore = map[string]int{start: 0}
	it.fScore = map[string]int{start: h(start, end)}
	it.cameFrom = map[string]string{}
	it.hasCame = map[string]bool{}
	it.closed = map[string]bool{}
	it.open = nodePQ{{node: start, cost: it.fScore[start]}}
	it.metrics.Started(algoAStar)

	return it
}

func (it *AStarIterator) snapshots() (map[string]int, map[string]int, map[string]string) {
	f := make(map[string]int, len(it.fScore))
	for k, v := range it.fScore {
		f[k] = v
	}
	g := make(map[string]int, len(it.gScore))
	for k, v := range it.gScore {
		g[k] = v
	}
	c := make(map[string]string, len(it.cameFrom))
	for k, v := range it.cameFrom {
		if it.hasCame[k] {
			c[k] = v
		}
	}

	return f, g, c
}

func (it *AStarIterator) reconstructPath(target string) []string {
	var path []string
	cur := target
	for {
		path = append([]string{cur}, path...)
		if !it.hasCame[cur] {
			break
		}
		cur = it.cameFrom[cur]
	}

	return path
}

// Next advances the run by one open-set pop and returns the resulting
// frame, or ok=false if the iterator is already exhausted.
func (it *AStarIterator) Next() (AStarFrame, bool) {
	switch it.state {
	case stateExhausted:
		return AStarFrame{}, false

	case stateNotStarted:
		it.state = stateRunning
		f, g, c := it.snapshots()
		frame := AStarFrame{Focus: it.open[0].node, FScore: f, GScore: g, CameFrom: c, Pending: it.open.snapshot()}
		it.metrics.Frame(algoAStar)

		return frame, true

	default:
		for {
			if len(it.open) == 0 {
				it.state = stateExhausted
				it.metrics.Finished(algoAStar)
				f, g, c := it.snapshots()
				frame := AStarFrame{Focus: doneFocus, FScore: f, GScore: g, CameFrom: c, Pending: nil}
				it.metrics.Frame(algoAStar)

				return frame, true
			}
			item := heap.Pop(&it.open).(nodeItem)
			if it.closed[item.node] {
				continue
			}
			it.closed[item.node] = true

			if item.node == it.end {
				it.state = stateExhausted
				it.metrics.Finished(algoAStar)
				f, g, c := it.snapshots()
				frame := AStarFrame{Focus: doneFocus, FScore: f, GScore: g, CameFrom: c, Pending: it.open.snapshot(), Path: it.reconstructPath(item.node)}
				it.metrics.Frame(algoAStar)

				return frame, true
			}

			for _, nb := range it.g.Neighbors(item.node) {
				if it.closed[nb.Name] {
					continue
				}
				tentativeG := it.gScore[item.node] + nb.Value
				old, known := it.gScore[nb.Name]
				if !known || tentativeG < old {
					it.gScore[nb.Name] = tentativeG
					it.cameFrom[nb.Name] = item.node
					it.hasCame[nb.Name] = true
					it.fScore[nb.Name] = tentativeG + it.h(nb.Name, it.end)
					heap.Push(&it.open, nodeItem{node: nb.Name, cost: it.fScore[nb.Name]})
				}
			}

			f, g, c := it.snapshots()
			frame := AStarFrame{Focus: item.node, FScore: f, GScore: g, CameFrom: c, Pending: it.open.snapshot()}
			it.metrics.Frame(algoAStar)

			return frame, true
		}
	}
}
