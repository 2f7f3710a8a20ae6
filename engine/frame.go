package engine

// doneFocus is the sentinel focus value emitted on an iterator's
// terminal frame.
const doneFocus = ""

// Frame is the marker interface satisfied by every algorithm's frame
// type. A host dispatches on the concrete type (BFSFrame,
// DijkstraFrame, ...) to render each algorithm polymorphically.
type Frame interface {
	isFrame()
}

// MSTEdge is one accepted edge of a minimum spanning tree/forest, used
// by both Prim and Kruskal terminal frames.
type MSTEdge struct {
	From   string
	To     string
	Weight int
}

// BFSFrame is emitted by the breadth-first traversal iterator.
type BFSFrame struct {
	Focus     string
	Processed []string
	Pending   []string
}

func (BFSFrame) isFrame() {}

// DFSFrame is emitted by the depth-first traversal iterator.
type DFSFrame struct {
	Focus     string
	Processed []string
	Pending   []string
}

func (DFSFrame) isFrame() {}

// TreeOrderFrame is emitted by the pre/in/post-order traversal
// iterators. Pending is always empty: the internal stack is not
// exposed.
type TreeOrderFrame struct {
	Focus     string
	Processed []string
	Pending   []string
}

func (TreeOrderFrame) isFrame() {}

// DijkstraEntry is one node's best-known cost and predecessor in a
// DijkstraFrame's Processed map.
type DijkstraEntry struct {
	Cost          int
	Predecessor   string
	HasPredecessor bool
}

// HeapEntry is one (node, cost) pending candidate, exposed for display
// purposes. Entries are listed in the heap's internal array order,
// which is not sorted by cost.
type HeapEntry struct {
	Node string
	Cost int
}

// DijkstraFrame is emitted by the Dijkstra iterator.
type DijkstraFrame struct {
	Focus     string
	Processed map[string]DijkstraEntry
	Pending   []HeapEntry
	// Path is set only on the terminal frame when an end node was
	// supplied and reached.
	Path []string
}

func (DijkstraFrame) isFrame() {}

// AStarFrame is emitted by the A* iterator.
type AStarFrame struct {
	Focus    string
	FScore   map[string]int
	GScore   map[string]int
	CameFrom map[string]string
	Pending  []HeapEntry
	// Path is set only on the terminal frame, once the end node is
	// reached.
	Path []string
}

func (AStarFrame) isFrame() {}

// PrimFrame is emitted by the Prim iterator.
type PrimFrame struct {
	Focus    string
	InMST    map[string]bool
	KeyValue map[string]int
	Parent   map[string]string
	// Edges is set only on the terminal frame: the accepted MST edges
	// in acceptance order.
	Edges []MSTEdge
}

func (PrimFrame) isFrame() {}

// KruskalFrame is emitted by the Kruskal iterator.
type KruskalFrame struct {
	// FocusEdge is the candidate edge examined this iteration, or nil
	// on the terminal frame.
	FocusEdge *MSTEdge
	Parents   map[string]string
	Ranks     map[string]int
	Pending   []MSTEdge
	// Edges is set only on the terminal frame: the accepted MST/forest
	// edges in acceptance order.
	Edges []MSTEdge
}

func (KruskalFrame) isFrame() {}
