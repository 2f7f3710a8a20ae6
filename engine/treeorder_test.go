package engine

import (
	"testing"

	"github.com/katalvlaran/nodedemon/graphstore"
	"github.com/stretchr/testify/assert"
)

func buildStarTree() *graphstore.Matrix {
	g := graphstore.New(false, false)
	for _, n := range []string{"A", "B", "C", "D"} {
		g.AddNode(n)
	}
	g.AddEdge("A", "B", 1, false)
	g.AddEdge("A", "C", 1, false)
	g.AddEdge("A", "D", 1, false)

	return g
}

func drain[F any](next func() (F, bool)) []F {
	var out []F
	for {
		f, ok := next()
		if !ok {
			break
		}
		out = append(out, f)
	}

	return out
}

func TestPreOrder(t *testing.T) {
	g := buildStarTree()
	it := NewPreOrder(g, "A", "")
	frames := drain(it.Next)
	assert.Equal(t, []string{"A", "B", "C", "D"}, frames[len(frames)-1].Processed)
	assert.Empty(t, frames[0].Pending)
}

func TestInOrder(t *testing.T) {
	g := buildStarTree()
	it := NewInOrder(g, "A", "")
	frames := drain(it.Next)
	assert.Equal(t, []string{"B", "A", "C", "D"}, frames[len(frames)-1].Processed)
}

func TestPostOrder(t *testing.T) {
	g := buildStarTree()
	it := NewPostOrder(g, "A", "")
	frames := drain(it.Next)
	assert.Equal(t, []string{"B", "C", "D", "A"}, frames[len(frames)-1].Processed)
}
