package engine

import (
	"testing"

	"github.com/katalvlaran/nodedemon/graphstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildScenario1() *graphstore.Matrix {
	g := graphstore.New(false, false)
	for _, n := range []string{"A", "B", "C", "D"} {
		g.AddNode(n)
	}
	g.AddEdge("A", "B", 1, false)
	g.AddEdge("A", "C", 1, false)
	g.AddEdge("B", "D", 1, false)
	g.AddEdge("C", "D", 1, false)

	return g
}

func TestBFSScenario1(t *testing.T) {
	g := buildScenario1()
	it := NewBFS(g, "A", "")
	var foci []string
	var lastProcessed []string
	for {
		f, ok := it.Next()
		if !ok {
			break
		}
		foci = append(foci, f.Focus)
		lastProcessed = f.Processed
	}
	assert.Equal(t, []string{"A", "A", "B", "C", "D", ""}, foci)
	assert.Equal(t, []string{"A", "B", "C", "D"}, lastProcessed)
}

func TestBFSUnknownStartYieldsNoFrames(t *testing.T) {
	g := buildScenario1()
	it := NewBFS(g, "Z", "")
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestBFSFreshIteratorsAreEqual(t *testing.T) {
	g := buildScenario1()
	it1 := NewBFS(g, "A", "")
	it2 := NewBFS(g, "A", "")
	for {
		f1, ok1 := it1.Next()
		f2, ok2 := it2.Next()
		require.Equal(t, ok1, ok2)
		if !ok1 {
			break
		}
		assert.Equal(t, f1, f2)
	}
}

func TestBFSFrameCountBound(t *testing.T) {
	g := buildScenario1()
	it := NewBFS(g, "A", "")
	count := 0
	for {
		_, ok := it.Next()
		if !ok {
			break
		}
		count++
	}
	assert.LessOrEqual(t, count, g.Len()+2)
}

func TestBFSEndNodeStopsEarly(t *testing.T) {
	g := buildScenario1()
	it := NewBFS(g, "A", "B")
	var last BFSFrame
	for {
		f, ok := it.Next()
		if !ok {
			break
		}
		last = f
	}
	assert.Equal(t, doneFocus, last.Focus)
	assert.Contains(t, last.Processed, "B")
}
