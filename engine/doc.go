// Package engine implements the stepwise algorithm engine: one iterator
// factory per algorithm, each producing a uniform sequence of frames
// that a host UI can step through one at a time.
//
// Overview:
//
// Every iterator is a finite, lazy, non-restartable sequence. The first
// frame is emitted before any work happens (focus = start node,
// processed = empty, pending = the initial worklist); each subsequent
// call to Next advances exactly one algorithm iteration and returns the
// frame reflecting the state afterward. When the algorithm finishes —
// either by exhausting its worklist or by reaching a caller-supplied
// end node — it yields one terminal frame whose Focus is the empty
// string (for Kruskal, whose frames carry a FocusEdge instead, the
// terminal FocusEdge is nil), then further calls to Next report no
// frame.
//
// Key features:
//   - BFS/DFS: NewBFS, NewDFS — full or single-target traversal.
//   - Tree order: NewPreOrder, NewInOrder, NewPostOrder — iterative,
//     explicit-stack traversal assuming a tree-shaped graph.
//   - Dijkstra: NewDijkstra — single-source shortest paths, weighted
//     graphs only.
//   - A*: NewAStar — heuristic-guided shortest path to a required end
//     node, weighted graphs only.
//   - Prim/Kruskal: NewPrim, NewKruskal — minimum spanning tree/forest
//     construction, weighted undirected graphs only.
//
// Frame shape: each algorithm has its own frame type (BFSFrame,
// DijkstraFrame, PrimFrame, ...), all satisfying the Frame marker
// interface; a host renders frames via a type switch rather than a
// single heterogeneous tuple.
//
// Failure mode: if start is unknown to the graph, or the operation
// requires a weighted graph and the graph isn't one, the constructor
// returns an iterator whose very first Next call reports no frame —
// there is no panic and no error return, per this module's "absorbed
// at the boundary" failure model.
//
// Complexity: the graph is an adjacency matrix, so every neighbor scan
// reads a full row (O(V)). BFS, DFS, the tree orders and Prim are
// therefore O(V²) overall, Dijkstra and A* O(V² + E log V), and
// Kruskal O(V² + E log E) for building and sorting its candidate
// list, amortized across however many Next calls the host chooses to
// make.
package engine
