package session

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/nodedemon/docio"
	"github.com/katalvlaran/nodedemon/engine"
	"github.com/katalvlaran/nodedemon/graphstore"
	"github.com/katalvlaran/nodedemon/namegen"
	"github.com/katalvlaran/nodedemon/nodemetrics"
)

// EditMode selects which kind of element a UI "add" action creates.
type EditMode int

const (
	ModeNodes EditMode = iota
	ModeEdges
)

// config holds Session construction options.
type config struct {
	metrics *nodemetrics.Recorder
}

// Option configures a Session at construction time.
type Option func(*config)

// WithMetrics attaches a metrics recorder threaded into every
// algorithm iterator this session constructs.
func WithMetrics(r *nodemetrics.Recorder) Option {
	return func(c *config) { c.metrics = r }
}

// Session is the live editing state threaded through a single running
// instance of the host program: the current graph, its file path and
// dirty flag, editing parameters, and the node-name generator.
type Session struct {
	mu sync.RWMutex

	RunID uuid.UUID

	graph    *graphstore.Matrix
	names    namegen.Sequence
	canvas   docio.Canvas
	filePath string
	dirty    bool

	mode          EditMode
	directed      bool
	currentWeight int // 0 means "none"
	currentTabTag string

	logger  *slog.Logger
	metrics *nodemetrics.Recorder
}

// New constructs a Session with an empty weighted-undirected graph,
// dirty=false, and no file path, per the lifecycle in spec.md §3.
func New(logger *slog.Logger, opts ...Option) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Session{
		RunID:   uuid.New(),
		graph:   graphstore.New(false, true),
		canvas:  docio.Canvas{},
		logger:  logger,
		metrics: cfg.metrics,
	}
	s.logger.Info("session created", "run_id", s.RunID)

	return s
}

// CreateNew replaces the graph with an empty one of the requested
// variant, resets the name generator, clears the file path, and
// clears the dirty flag.
func (s *Session) CreateNew(weighted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.graph = graphstore.New(s.directed, weighted)
	s.canvas = docio.Canvas{}
	s.names = namegen.Sequence{}
	s.filePath = ""
	s.dirty = false
	s.logger.Info("session reset", "run_id", s.RunID, "weighted", weighted)
}

// IsChanged reports the dirty flag.
func (s *Session) IsChanged() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.dirty
}

// SetChanged sets the dirty flag explicitly.
func (s *Session) SetChanged(dirty bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = dirty
}

// GetFilename returns the current file path, empty if unset.
func (s *Session) GetFilename() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filePath
}

// SetFilename sets the current file path.
func (s *Session) SetFilename(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filePath = path
}

// IsTree delegates to the graph store.
func (s *Session) IsTree() bool {
	s.mu.RLock()
	g := s.graph
	s.mu.RUnlock()

	return g.IsTree()
}

// IsWeighted delegates to the graph store.
func (s *Session) IsWeighted() bool {
	s.mu.RLock()
	g := s.graph
	s.mu.RUnlock()

	return g.Weighted()
}

// GetGraphMatrix returns the live graph store.
func (s *Session) GetGraphMatrix() *graphstore.Matrix {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.graph
}

// SetGraphMatrix replaces the live graph (e.g. after a load) and
// fast-forwards the name generator past its existing names.
func (s *Session) SetGraphMatrix(g *graphstore.Matrix, weighted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.graph = g
	s.names.FastForwardPast(g.Names())
	s.dirty = false
}

// Mode, SetMode, Directed, SetDirected, CurrentWeight, SetCurrentWeight,
// CurrentTabTag, and SetCurrentTabTag are plain getters/setters for the
// UI-owned editing parameters; the core only stores and returns them.

func (s *Session) Mode() EditMode {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.mode
}

func (s *Session) SetMode(m EditMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
}

func (s *Session) Directed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.directed
}

func (s *Session) SetDirected(directed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.directed = directed
}

func (s *Session) CurrentWeight() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.currentWeight
}

func (s *Session) SetCurrentWeight(w int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentWeight = w
}

func (s *Session) CurrentTabTag() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.currentTabTag
}

func (s *Session) SetCurrentTabTag(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentTabTag = tag
}

// NextNodeName draws the next name from the session's generator,
// without adding it to the graph.
func (s *Session) NextNodeName() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.names.Next()
}

// AddNode adds name to the graph and marks the session dirty.
func (s *Session) AddNode(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := s.graph.AddNode(name)
	if ok {
		s.dirty = true
	}

	return ok
}

// DeleteNode removes name from the graph and marks the session dirty.
func (s *Session) DeleteNode(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := s.graph.DeleteNode(name)
	if ok {
		s.dirty = true
	}

	return ok
}

// AddEdge adds an edge to the graph and marks the session dirty.
func (s *Session) AddEdge(from, to string, weight int, reverseToo bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := s.graph.AddEdge(from, to, weight, reverseToo)
	if ok {
		s.dirty = true
	}

	return ok
}

// DeleteEdge removes an edge from the graph and marks the session dirty.
func (s *Session) DeleteEdge(from, to string, reverseToo bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := s.graph.DeleteEdge(from, to, reverseToo)
	if ok {
		s.dirty = true
	}

	return ok
}

// HasEdge reports whether an edge from->to is present.
func (s *Session) HasEdge(from, to string) bool {
	s.mu.RLock()
	g := s.graph
	s.mu.RUnlock()
	_, ok := g.IsConnected(from, to)

	return ok
}

// Save writes the current graph and canvas to path using the document
// codec, updates the file path, and clears the dirty flag.
func (s *Session) Save(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := docio.Save(path, s.graph, s.canvas); err != nil {
		s.logger.Error("save failed", "run_id", s.RunID, "path", path, "error", err)

		return fmt.Errorf("session: save %s: %w", path, err)
	}
	s.filePath = path
	s.dirty = false
	s.logger.Info("session saved", "run_id", s.RunID, "path", path)

	return nil
}

// Load reads a document from path, replaces the live graph, and
// fast-forwards the name generator past its names.
func (s *Session) Load(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, canvas, err := docio.Load(path, s.directed)
	if err != nil {
		s.logger.Error("load failed", "run_id", s.RunID, "path", path, "error", err)

		return fmt.Errorf("session: load %s: %w", path, err)
	}
	s.graph = g
	s.canvas = canvas
	s.names.FastForwardPast(g.Names())
	s.filePath = path
	s.dirty = false
	s.logger.Info("session loaded", "run_id", s.RunID, "path", path)

	return nil
}

// options returns the engine.Option slice this session threads into
// every iterator it constructs, currently just the metrics recorder.
func (s *Session) options() []engine.Option {
	if s.metrics == nil {
		return nil
	}

	return []engine.Option{engine.WithMetrics(s.metrics)}
}

// BreadthFirst returns a fresh BFS iterator over the live graph.
func (s *Session) BreadthFirst(start, end string) *engine.BFSIterator {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return engine.NewBFS(s.graph, start, end, s.options()...)
}

// DepthFirst returns a fresh DFS iterator over the live graph.
func (s *Session) DepthFirst(start, end string) *engine.DFSIterator {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return engine.NewDFS(s.graph, start, end, s.options()...)
}

// PreOrder returns a fresh pre-order iterator over the live graph.
func (s *Session) PreOrder(start, end string) *engine.TreeOrderIterator {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return engine.NewPreOrder(s.graph, start, end, s.options()...)
}

// InOrder returns a fresh in-order iterator over the live graph.
func (s *Session) InOrder(start, end string) *engine.TreeOrderIterator {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return engine.NewInOrder(s.graph, start, end, s.options()...)
}

// PostOrder returns a fresh post-order iterator over the live graph.
func (s *Session) PostOrder(start, end string) *engine.TreeOrderIterator {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return engine.NewPostOrder(s.graph, start, end, s.options()...)
}

// Dijkstra returns a fresh Dijkstra iterator over the live graph.
func (s *Session) Dijkstra(start, end string) *engine.DijkstraIterator {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return engine.NewDijkstra(s.graph, start, end, s.options()...)
}

// AStar returns a fresh A* iterator over the live graph.
func (s *Session) AStar(start, end string, h engine.Heuristic) *engine.AStarIterator {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return engine.NewAStar(s.graph, start, end, h, s.options()...)
}

// PrimsMST returns a fresh Prim iterator over the live graph.
func (s *Session) PrimsMST(start string) *engine.PrimIterator {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return engine.NewPrim(s.graph, start, s.options()...)
}

// KruskalsMST returns a fresh Kruskal iterator over the live graph.
func (s *Session) KruskalsMST() *engine.KruskalIterator {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return engine.NewKruskal(s.graph, s.options()...)
}
