package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAStarScenario4(t *testing.T) {
	g := buildWeighted4()
	it := NewAStar(g, "A", "D", ZeroHeuristic)
	var final AStarFrame
	for {
		f, ok := it.Next()
		if !ok {
			break
		}
		final = f
	}
	require.Equal(t, []string{"A", "B", "D"}, final.Path)
	assert.Equal(t, 5, final.GScore["D"])
}

func TestAStarRequiresEndNode(t *testing.T) {
	g := buildWeighted4()
	it := NewAStar(g, "A", "", ZeroHeuristic)
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestAStarMatchesDijkstraCostWithAdmissibleHeuristic(t *testing.T) {
	g := buildWeighted4()
	dij := NewDijkstra(g, "A", "C")
	var dijFinal DijkstraFrame
	for {
		f, ok := dij.Next()
		if !ok {
			break
		}
		dijFinal = f
	}

	as := NewAStar(g, "A", "C", ZeroHeuristic)
	var asFinal AStarFrame
	for {
		f, ok := as.Next()
		if !ok {
			break
		}
		asFinal = f
	}
	assert.Equal(t, dijFinal.Processed["C"].Cost, asFinal.GScore["C"])
}
