// Package graphstore implements a single adjacency-matrix-backed graph
// type shared by the directed/undirected and weighted/unweighted
// variants described by the host application.
//
// Key features:
//   - Matrix: ordered node names plus a square cell grid, growable as
//     nodes are added and removed.
//   - AddNode/DeleteNode/AddEdge/DeleteEdge mutate the live matrix;
//     AddEdge requires both endpoints to already exist in both the
//     weighted and unweighted variant.
//   - Neighbors/IsConnected/Matrix expose read-only queries for a host
//     UI to render rows, columns, and edge weights.
//   - IsTree recognizes whether the current graph is a tree (undirected,
//     fully connected, acyclic).
//
// Complexity:
//
//   - AddNode/DeleteNode: O(k²) for the grid resize, which copies the
//     whole flat grid (k = node count).
//   - AddEdge/DeleteEdge/IsConnected: O(1), with endpoints looked up in
//     the index map.
//   - Neighbors: O(k).
//   - IsTree: O(k²), since the connectivity and cycle scans read a full
//     matrix row per visited node.
//
// Failure model: per-operation, there are no panics. Mutations on an
// unknown node name are silent no-ops; queries on an unknown node name
// return the zero value and false/empty, matching how the rest of this
// module treats "not found" as an absorbed condition rather than an
// error (see the top-level design notes).
package graphstore
