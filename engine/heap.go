package engine

// nodeItem is one (node, cost) candidate in a cost-ordered min-heap,
// shared by Dijkstra and A* (where cost holds the f-score). Ties break
// on node name for determinism, matching the teacher's documented
// choice to make tie-breaking reproducible rather than heap-order
// dependent.
type nodeItem struct {
	node string
	cost int
}

// nodePQ implements container/heap.Interface over a slice of nodeItem.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].node < pq[j].node
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// snapshot returns the pending heap as HeapEntry values, without
// mutating the heap, for display purposes.
func (pq nodePQ) snapshot() []HeapEntry {
	out := make([]HeapEntry, len(pq))
	for i, it := range pq {
		out[i] = HeapEntry{Node: it.node, Cost: it.cost}
	}

	return out
}
