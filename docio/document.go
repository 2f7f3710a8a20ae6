package docio

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/katalvlaran/nodedemon/graphstore"
)

// rawDocument mirrors the three top-level fields of a persisted .nd
// file. Graph is kept as raw JSON elements since its first entry (node
// names) and remaining entries (cell rows) have different shapes.
type rawDocument struct {
	Graph    []json.RawMessage `json:"graph"`
	Weighted bool              `json:"weighted"`
	Canvas   Canvas            `json:"canvas"`
}

// Document is the in-memory, already-decoded form of a session
// document: a live graph, its canvas blob, and a run-scoped identifier
// stamped for freshly-created documents (never persisted; see
// SPEC_FULL.md's domain-stack notes on google/uuid).
type Document struct {
	Graph      *graphstore.Matrix
	Canvas     Canvas
	DocumentID uuid.UUID
}

// NewDocument builds an empty document of the requested variant,
// stamping a fresh DocumentID.
func NewDocument(directed, weighted bool) *Document {
	return &Document{
		Graph:      graphstore.New(directed, weighted),
		Canvas:     Canvas{},
		DocumentID: uuid.New(),
	}
}

// Marshal renders a document into the on-disk .nd format: a "graph"
// array (names row, then k cell rows), a "weighted" flag, and the
// opaque "canvas" blob.
func Marshal(g *graphstore.Matrix, canvas Canvas) ([]byte, error) {
	weighted := g.Weighted()
	names := g.Names()
	rows := g.Rows()

	graphElems := make([]interface{}, 0, len(rows)+1)
	graphElems = append(graphElems, names)
	for _, row := range rows {
		cells := make([]interface{}, len(row))
		for i, v := range row {
			cells[i] = cellToJSON(weighted, v)
		}
		graphElems = append(graphElems, cells)
	}

	out := struct {
		Graph    []interface{} `json:"graph"`
		Weighted bool          `json:"weighted"`
		Canvas   Canvas        `json:"canvas"`
	}{
		Graph:    graphElems,
		Weighted: weighted,
		Canvas:   canvas,
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	return data, nil
}

// Unmarshal parses the on-disk .nd format into a live graph and its
// canvas blob. directed is supplied by the caller since the format
// does not encode directedness explicitly (the source's sessions are
// always undirected-or-directed by prior session state, not by file
// content); see SPEC_FULL.md.
func Unmarshal(data []byte, directed bool) (*graphstore.Matrix, Canvas, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if len(raw.Graph) < 1 {
		return nil, nil, fmt.Errorf("%w: graph array is empty", ErrMalformedDocument)
	}

	var names []string
	if err := json.Unmarshal(raw.Graph[0], &names); err != nil {
		return nil, nil, fmt.Errorf("%w: graph[0] is not a name array: %v", ErrMalformedDocument, err)
	}
	rows := raw.Graph[1:]
	if len(rows) != len(names) {
		return nil, nil, fmt.Errorf("%w: %d rows for %d names", ErrMalformedDocument, len(rows), len(names))
	}

	g := graphstore.New(directed, raw.Weighted)
	for _, n := range names {
		g.AddNode(n)
	}

	for i, rowRaw := range rows {
		var cells []interface{}
		if err := json.Unmarshal(rowRaw, &cells); err != nil {
			return nil, nil, fmt.Errorf("%w: row %d is not an array: %v", ErrMalformedDocument, i, err)
		}
		if len(cells) != len(names) {
			return nil, nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedDocument, i, len(cells), len(names))
		}
		for j, cell := range cells {
			v, err := parseCell(raw.Weighted, cell)
			if err != nil {
				return nil, nil, err
			}
			if v == 0 {
				continue
			}
			g.AddEdge(names[i], names[j], v, false)
		}
	}

	return g, raw.Canvas, nil
}

// cellToJSON renders one matrix cell value per the variant's on-disk
// shape: false for absent, true for an unweighted present edge, the
// weight itself for a weighted one.
func cellToJSON(weighted bool, v int) interface{} {
	if v == 0 {
		return false
	}
	if !weighted {
		return true
	}

	return v
}

// parseCell parses one decoded JSON cell value back into a matrix cell
// int, validating it against the declared variant.
func parseCell(weighted bool, raw interface{}) (int, error) {
	switch val := raw.(type) {
	case bool:
		if !val {
			return 0, nil
		}
		if weighted {
			return 0, fmt.Errorf("%w: boolean true cell in a weighted document", ErrVariantMismatch)
		}

		return 1, nil
	case float64:
		if !weighted {
			return 0, fmt.Errorf("%w: numeric cell in an unweighted document", ErrVariantMismatch)
		}
		if val <= 0 {
			return 0, nil
		}

		return int(val), nil
	default:
		return 0, fmt.Errorf("%w: unsupported cell value %v", ErrMalformedDocument, raw)
	}
}

// Save writes a document to path, using reverseToo-safe directed-aware
// edges already encoded in g. IO errors are wrapped in ErrIO.
func Save(path string, g *graphstore.Matrix, canvas Canvas) error {
	data, err := Marshal(g, canvas)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	return nil
}

// Load reads and parses a document from path.
func Load(path string, directed bool) (*graphstore.Matrix, Canvas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	return Unmarshal(data, directed)
}
