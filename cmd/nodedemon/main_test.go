package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nodedemon/session"
)

func buildTestSession() *session.Session {
	s := session.New(slog.Default())
	s.AddNode("A")
	s.AddNode("B")
	s.AddNode("C")
	s.AddEdge("A", "B", 1, false)
	s.AddEdge("B", "C", 1, false)

	return s
}

func TestCollectFramesBFS(t *testing.T) {
	lines, err := collectFrames(buildTestSession(), "bfs", "A", "")
	require.NoError(t, err)
	assert.NotEmpty(t, lines)
}

func TestCollectFramesUnknownAlgorithm(t *testing.T) {
	_, err := collectFrames(buildTestSession(), "nope", "A", "")
	assert.Error(t, err)
}

func TestCollectFramesUnknownStart(t *testing.T) {
	_, err := collectFrames(buildTestSession(), "bfs", "ZZZ", "")
	assert.Error(t, err)
}

func TestRunRequiresStart(t *testing.T) {
	code := run([]string{})
	assert.Equal(t, 2, code)
}
