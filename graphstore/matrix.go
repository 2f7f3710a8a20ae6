package graphstore

import "sync"

// Connection pairs a neighbor name with the cell value of the edge
// reaching it, in node-insertion order.
type Connection struct {
	Name  string
	Value int
}

// Matrix is a single adjacency-matrix-backed graph. Weighted and
// unweighted are distinguished by the Weighted flag: unweighted edges
// always store cell value 1; weighted edges store a positive integer
// weight. Cell value 0 means "no edge" in both variants.
type Matrix struct {
	mu       sync.RWMutex
	names    []string
	index    map[string]int
	cells    *grid
	directed bool
	weighted bool
}

// New constructs an empty Matrix of the given directed/weighted
// variant.
func New(directed, weighted bool) *Matrix {
	return &Matrix{
		names:    make([]string, 0),
		index:    make(map[string]int),
		cells:    newGrid(),
		directed: directed,
		weighted: weighted,
	}
}

// Directed reports whether edges are one-directional by default.
func (m *Matrix) Directed() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.directed
}

// Weighted reports whether cell values carry a positive weight rather
// than a plain boolean presence flag.
func (m *Matrix) Weighted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.weighted
}

// Len returns the current node count.
func (m *Matrix) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.names)
}

// IsEmpty reports whether the graph has no nodes.
func (m *Matrix) IsEmpty() bool {
	return m.Len() == 0
}

// HasNode reports whether name exists in the graph.
func (m *Matrix) HasNode(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.index[name]

	return ok
}

// Names returns the node names in insertion order. The returned slice
// is a defensive copy.
func (m *Matrix) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.names))
	copy(out, m.names)

	return out
}

// AddNode inserts name at the end of the node ordering. Idempotent:
// re-adding an existing name is a no-op and returns false.
func (m *Matrix) AddNode(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.index[name]; ok {
		return false
	}
	idx := m.cells.growByOne()
	m.names = append(m.names, name)
	m.index[name] = idx

	return true
}

// DeleteNode removes name along with its row/column (and therefore all
// incident edges). Remaining indices shift to stay contiguous. Returns
// false if name is unknown.
func (m *Matrix) DeleteNode(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx, ok := m.index[name]
	if !ok {
		return false
	}
	m.cells.removeAt(idx)
	m.names = append(m.names[:idx], m.names[idx+1:]...)
	delete(m.index, name)
	for n, i := range m.index {
		if i > idx {
			m.index[n] = i - 1
		}
	}

	return true
}

// AddEdge writes the cell value for from->to. Both endpoints must
// already exist; otherwise this is a silent no-op (the stricter,
// uniformly-applied "require exists" rule). weight is ignored (treated
// as 1) for unweighted graphs and must be a positive integer for
// weighted graphs (weight<=0 is a no-op). When the graph is undirected
// the reverse cell is always written too; for a directed graph,
// reverseToo additionally writes to->from with the same value.
func (m *Matrix) AddEdge(from, to string, weight int, reverseToo bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.index[from]
	if !ok {
		return false
	}
	j, ok := m.index[to]
	if !ok {
		return false
	}
	v := weight
	if !m.weighted {
		v = 1
	} else if v <= 0 {
		return false
	}
	m.cells.set(i, j, v)
	if !m.directed || reverseToo {
		m.cells.set(j, i, v)
	}

	return true
}

// DeleteEdge clears the cell value for from->to (and the reverse cell
// when the graph is undirected, or when reverseToo is set for a
// directed graph). Returns false if either endpoint is unknown.
func (m *Matrix) DeleteEdge(from, to string, reverseToo bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.index[from]
	if !ok {
		return false
	}
	j, ok := m.index[to]
	if !ok {
		return false
	}
	m.cells.set(i, j, 0)
	if !m.directed || reverseToo {
		m.cells.set(j, i, 0)
	}

	return true
}

// IsConnected returns the cell value for from->to and whether it is
// truthy (non-zero). Unknown endpoints report (0, false).
func (m *Matrix) IsConnected(from, to string) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.index[from]
	if !ok {
		return 0, false
	}
	j, ok := m.index[to]
	if !ok {
		return 0, false
	}
	v := m.cells.at(i, j)

	return v, v != 0
}

// Neighbors returns the truthy outgoing connections from name, in
// node-insertion order. Unknown names yield nil.
func (m *Matrix) Neighbors(name string) []Connection {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.index[name]
	if !ok {
		return nil
	}
	out := make([]Connection, 0, len(m.names))
	for j, n := range m.names {
		v := m.cells.at(i, j)
		if v != 0 {
			out = append(out, Connection{Name: n, Value: v})
		}
	}

	return out
}

// Rows returns a defensive copy of the full cell grid, one row per
// node in Names() order, for a host UI to render as a table.
func (m *Matrix) Rows() [][]int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := m.cells.size()
	rows := make([][]int, n)
	for r := 0; r < n; r++ {
		row := make([]int, n)
		for c := 0; c < n; c++ {
			row[c] = m.cells.at(r, c)
		}
		rows[r] = row
	}

	return rows
}

// IsTree reports whether the graph is undirected, fully connected, and
// acyclic. Vacuously true on an empty graph.
func (m *Matrix) IsTree() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.directed {
		return false
	}
	n := len(m.names)
	if n == 0 {
		return true
	}
	if !m.fullyConnectedLocked() {
		return false
	}

	return !m.isCyclicLocked()
}

// fullyConnectedLocked runs a BFS from names[0] and compares the
// reached-count to the node count. Caller must hold m.mu.
func (m *Matrix) fullyConnectedLocked() bool {
	visited := make(map[int]bool, len(m.names))
	queue := []int{0}
	visited[0] = true
	count := 1
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for j := 0; j < m.cells.size(); j++ {
			if m.cells.at(cur, j) != 0 && !visited[j] {
				visited[j] = true
				count++
				queue = append(queue, j)
			}
		}
	}

	return count == len(m.names)
}

// isCyclicLocked runs a BFS tracking (node, parent) pairs; a visited
// neighbor that isn't the immediate parent indicates a cycle. Caller
// must hold m.mu.
func (m *Matrix) isCyclicLocked() bool {
	type pair struct{ node, parent int }
	visited := make(map[int]bool, len(m.names))
	queue := []pair{{0, -1}}
	visited[0] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for j := 0; j < m.cells.size(); j++ {
			if m.cells.at(cur.node, j) == 0 {
				continue
			}
			if j == cur.parent {
				continue
			}
			if visited[j] {
				return true
			}
			visited[j] = true
			queue = append(queue, pair{j, cur.node})
		}
	}

	return false
}
