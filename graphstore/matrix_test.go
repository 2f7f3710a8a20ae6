package graphstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNodeIdempotent(t *testing.T) {
	m := New(false, false)
	assert.True(t, m.AddNode("A"))
	assert.False(t, m.AddNode("A"))
	assert.Equal(t, 1, m.Len())
}

func TestAddEdgeRequiresBothEndpoints(t *testing.T) {
	for _, weighted := range []bool{false, true} {
		m := New(false, weighted)
		m.AddNode("A")
		assert.False(t, m.AddEdge("A", "B", 1, false), "weighted=%v", weighted)
		v, ok := m.IsConnected("A", "B")
		assert.False(t, ok)
		assert.Zero(t, v)
	}
}

func TestUndirectedSymmetry(t *testing.T) {
	m := New(false, true)
	m.AddNode("A")
	m.AddNode("B")
	require.True(t, m.AddEdge("A", "B", 5, false))
	va, _ := m.IsConnected("A", "B")
	vb, _ := m.IsConnected("B", "A")
	assert.Equal(t, va, vb)
	assert.Equal(t, 5, va)
}

func TestDirectedAsymmetry(t *testing.T) {
	m := New(true, true)
	m.AddNode("A")
	m.AddNode("B")
	require.True(t, m.AddEdge("A", "B", 5, false))
	_, okAB := m.IsConnected("A", "B")
	_, okBA := m.IsConnected("B", "A")
	assert.True(t, okAB)
	assert.False(t, okBA)
}

func TestNeighborOrderingFollowsInsertion(t *testing.T) {
	m := New(false, false)
	for _, n := range []string{"A", "B", "C", "D"} {
		m.AddNode(n)
	}
	m.AddEdge("A", "C", 1, false)
	m.AddEdge("A", "B", 1, false)
	ns := m.Neighbors("A")
	require.Len(t, ns, 2)
	assert.Equal(t, "B", ns[0].Name)
	assert.Equal(t, "C", ns[1].Name)
}

func TestDeleteNodeShiftsIndices(t *testing.T) {
	m := New(false, false)
	for _, n := range []string{"A", "B", "C"} {
		m.AddNode(n)
	}
	m.AddEdge("A", "C", 1, false)
	require.True(t, m.DeleteNode("B"))
	assert.Equal(t, []string{"A", "C"}, m.Names())
	v, ok := m.IsConnected("A", "C")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestIsTreeScenario(t *testing.T) {
	// Undirected acyclic connected graph of 4 nodes and 3 edges.
	m := New(false, false)
	for _, n := range []string{"A", "B", "C", "D"} {
		m.AddNode(n)
	}
	m.AddEdge("A", "B", 1, false)
	m.AddEdge("A", "C", 1, false)
	m.AddEdge("A", "D", 1, false)
	assert.True(t, m.IsTree())

	// Adding an edge that closes a cycle breaks tree-ness.
	m.AddEdge("B", "C", 1, false)
	assert.False(t, m.IsTree())
}

func TestIsTreeFalseOnDirected(t *testing.T) {
	m := New(true, false)
	m.AddNode("A")
	assert.False(t, m.IsTree())
}

func TestIsTreeVacuouslyTrueOnEmpty(t *testing.T) {
	m := New(false, false)
	assert.True(t, m.IsTree())
}
