// Package nodedemon is a pedagogical graph library built around a
// step-addressable execution model: every traversal and shortest-path
// algorithm is exposed as a lazy sequence of observation frames, so a
// host can pause, resume, or timed-replay each iteration.
//
// Organized under four subpackages plus two supporting ones:
//
//	graphstore/  — adjacency-matrix graph store: directed/undirected,
//	               weighted/unweighted, tree recognition
//	engine/      — the frame-protocol iterators: BFS, DFS, pre/in/post
//	               order, Dijkstra, A*, Prim's and Kruskal's MST
//	namegen/     — lexicographically monotone node-name generator
//	session/     — editing state: live graph, dirty flag, file path
//	docio/       — the .nd document codec (graph/weighted/canvas)
//	nodemetrics/ — Prometheus instrumentation for running iterators
//
// cmd/nodedemon is a small CLI exercising the whole stack: load or
// create a session, run one algorithm to completion, print its frames.
package nodedemon
