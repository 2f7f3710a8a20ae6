package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDFSScenario2(t *testing.T) {
	g := buildScenario1()
	it := NewDFS(g, "A", "")
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
	assert.Equal(t, []string{"A", "A", "C", "D", "B", ""}, foci)
	assert.Equal(t, []string{"A", "C", "D", "B"}, lastProcessed)
}

func TestDFSUnknownStartYieldsNoFrames(t *testing.T) {
	g := buildScenario1()
	it := NewDFS(g, "Z", "")
	_, ok := it.Next()
	assert.False(t, ok)
}
