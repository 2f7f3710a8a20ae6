package engine

import (
	"testing"

	"github.com/katalvlaran/nodedemon/graphstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildWeighted4 builds the undirected weighted graph used across the
// Dijkstra/A* examples: A-B:2, A-C:10, B-D:3, C-D:6.
func buildWeighted4() *graphstore.Matrix {
	g := graphstore.New(false, true)
	for _, n := range []string{"A", "B", "C", "D"} {
		g.AddNode(n)
	}
	g.AddEdge("A", "B", 2, false)
	g.AddEdge("A", "C", 10, false)
	g.AddEdge("B", "D", 3, false)
	g.AddEdge("C", "D", 6, false)

	return g
}

// TestDijkstraCorrectness checks the general TESTABLE PROPERTY
// (shortest cost reached equals brute-force shortest path cost) rather
// than the literal scenario-3 digits from the source spec, since that
// scenario's own numbers (predecessor chain A-B-D-C costing 11 there,
// but claimed cost 8) are inconsistent with correct Dijkstra
// arithmetic on the stated edge weights; see SPEC_FULL.md §8.
func TestDijkstraCorrectness(t *testing.T) {
	g := buildWeighted4()
	it := NewDijkstra(g, "A", "")
	var final DijkstraFrame
	for {
		f, ok := it.Next()
		if !ok {
			break
		}
		final = f
	}
	require.Contains(t, final.Processed, "A")
	assert.Equal(t, 0, final.Processed["A"].Cost)
	assert.Equal(t, 2, final.Processed["B"].Cost)
	assert.Equal(t, "A", final.Processed["B"].Predecessor)
	assert.Equal(t, 5, final.Processed["D"].Cost)
	assert.Equal(t, "B", final.Processed["D"].Predecessor)
	// Direct A-C (10) beats the longer A-B-D-C (2+3+6=11) detour.
	assert.Equal(t, 10, final.Processed["C"].Cost)
	assert.Equal(t, "A", final.Processed["C"].Predecessor)
}

func TestDijkstraReconstructedPathMatchesCost(t *testing.T) {
	g := buildWeighted4()
	it := NewDijkstra(g, "A", "C")
	var final DijkstraFrame
	for {
		f, ok := it.Next()
		if !ok {
			break
		}
		final = f
	}
	require.Equal(t, []string{"A", "C"}, final.Path)
	// The path's only edge, A-C, weighs 10.
	assert.Equal(t, 10, final.Processed["C"].Cost)
}

func TestDijkstraRejectsUnweightedGraph(t *testing.T) {
	g := graphstore.New(false, false)
	g.AddNode("A")
	it := NewDijkstra(g, "A", "")
	_, ok := it.Next()
	assert.False(t, ok)
}
