package docio

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nodedemon/graphstore"
)

func buildSaveGraph() *graphstore.Matrix {
	g := graphstore.New(false, true)
	g.AddNode("A")
	g.AddNode("B")
	g.AddNode("C")
	g.AddEdge("A", "B", 2, false)
	g.AddEdge("B", "C", 5, false)

	return g
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	g := buildSaveGraph()
	canvas := Canvas{
		"2": {Kind: "text", Coordinates: []float64{1, 2}, Tags: []string{"node", "nodename_A"}},
		"1": {Kind: "oval", Coordinates: []float64{0, 0, 10, 10}, Tags: []string{"node", "node_A"}},
	}

	data, err := Marshal(g, canvas)
	require.NoError(t, err)

	loaded, loadedCanvas, err := Unmarshal(data, g.Directed())
	require.NoError(t, err)

	assert.Equal(t, g.Names(), loaded.Names())
	assert.Equal(t, g.Rows(), loaded.Rows())
	assert.Equal(t, canvas, loadedCanvas)
}

func TestMarshalCanvasKeyOrder(t *testing.T) {
	g := buildSaveGraph()
	canvas := Canvas{
		"10": {Kind: "oval", Coordinates: []float64{0}, Tags: nil},
		"2":  {Kind: "oval", Coordinates: []float64{0}, Tags: nil},
	}
	data, err := Marshal(g, canvas)
	require.NoError(t, err)

	idx2 := indexOf(t, string(data), `"2":`)
	idx10 := indexOf(t, string(data), `"10":`)
	assert.Less(t, idx2, idx10)
}

func indexOf(t *testing.T, s, substr string) int {
	t.Helper()
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	t.Fatalf("substring %q not found in %q", substr, s)

	return -1
}

func TestUnmarshalRejectsMalformedDocument(t *testing.T) {
	_, _, err := Unmarshal([]byte(`{"graph": [], "weighted": true, "canvas": {}}`), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedDocument))
}

func TestUnmarshalRejectsVariantMismatch(t *testing.T) {
	doc := `{"graph": [["A"], [true]], "weighted": true, "canvas": {}}`
	_, _, err := Unmarshal([]byte(doc), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVariantMismatch))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	g := buildSaveGraph()
	path := filepath.Join(t.TempDir(), "session.nd")
	require.NoError(t, Save(path, g, Canvas{}))

	loaded, _, err := Load(path, g.Directed())
	require.NoError(t, err)
	assert.Equal(t, g.Rows(), loaded.Rows())
}

func TestLoadWrapsIOError(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.nd"), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIO))
}

func TestNewDocumentStampsID(t *testing.T) {
	d := NewDocument(false, true)
	assert.NotEqual(t, d.DocumentID.String(), NewDocument(false, true).DocumentID.String())
}
