package engine

import (
	"github.com/katalvlaran/nodedemon/graphstore"
	"github.com/katalvlaran/nodedemon/nodemetrics"
)

// treeOrderMode selects which of the three classical tree traversals a
// TreeOrderIterator performs.
type treeOrderMode int

const (
	modePreOrder treeOrderMode = iota
	modeInOrder
	modePostOrder
)

// treeFrame is one entry of the explicit traversal stack: node is the
// vertex being visited, children is computed lazily on first
// encounter, idx tracks how many children have been pushed so far,
// and phase distinguishes "not yet entered", "entered" (post-order:
// children computed; in-order: first child pushed, awaiting return to
// visit self), and "visiting remaining children" (in-order only).
type treeFrame struct {
	node     string
	children []string
	idx      int
	phase    int // 0=unentered, 1=entered/afterFirstChild, 2=remaining
}

// TreeOrderIterator performs an iterative pre/in/post-order traversal
// of a tree-shaped graph one node-visit at a time, started by
// NewPreOrder/NewInOrder/NewPostOrder. Pending is always empty in its
// frames: the internal stack is not exposed, per this algorithm's
// contract. It is not restartable.
type TreeOrderIterator struct {
	g         *graphstore.Matrix
	end       string
	mode      treeOrderMode
	algo      string
	visited   map[string]bool
	processed []string
	stack     []*treeFrame
	state     iterState
	metrics   *nodemetrics.Recorder
}

func newTreeOrder(g *graphstore.Matrix, start, end string, mode treeOrderMode, algo string, opts []Option) *TreeOrderIterator {
	cfg := newConfig(opts)
	it := &TreeOrderIterator{g: g, end: end, mode: mode, algo: algo, metrics: cfg.metrics}
	if g == nil || !g.HasNode(start) {
		it.state = stateExhausted

		return it
	}
	it.visited = map[string]bool{start: true}
	it.processed = []string{}
	it.stack = []*treeFrame{{node: start}}
	it.metrics.Started(algo)

	return it
}

// NewPreOrder begins a pre-order traversal from start: a node is
// visited before any of its children.
func NewPreOrder(g *graphstore.Matrix, start, end string, opts ...Option) *TreeOrderIterator {
	return newTreeOrder(g, start, end, modePreOrder, algoPreOrder, opts)
}

// NewInOrder begins an in-order traversal from start: a node is
// visited after its first (leftmost) child's subtree and before the
// rest of its children's subtrees.
func NewInOrder(g *graphstore.Matrix, start, end string, opts ...Option) *TreeOrderIterator {
	return newTreeOrder(g, start, end, modeInOrder, algoInOrder, opts)
}

// NewPostOrder begins a post-order traversal from start: a node is
// visited only after all of its children's subtrees.
func NewPostOrder(g *graphstore.Matrix, start, end string, opts ...Option) *TreeOrderIterator {
	return newTreeOrder(g, start, end, modePostOrder, algoPostOrder, opts)
}

func (it *TreeOrderIterator) childrenOf(node string) []string {
	var out []string
	for _, nb := range it.g.Neighbors(node) {
		if !it.visited[nb.Name] {
			it.visited[nb.Name] = true
			out = append(out, nb.Name)
		}
	}

	return out
}

func (it *TreeOrderIterator) emit(focus string) TreeOrderFrame {
	it.metrics.Frame(it.algo)

	return TreeOrderFrame{Focus: focus, Processed: copyStrings(it.processed), Pending: []string{}}
}

// Next advances the traversal by one node-visit and returns the
// resulting frame, or ok=false if the iterator is already exhausted.
func (it *TreeOrderIterator) Next() (TreeOrderFrame, bool) {
	if it.state == stateExhausted {
		return TreeOrderFrame{}, false
	}
	if it.state == stateNotStarted {
		it.state = stateRunning

		return TreeOrderFrame{Focus: it.stack[0].node, Processed: []string{}, Pending: []string{}}, true
	}

	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]

		switch it.mode {
		case modePreOrder:
			node := top.node
			it.stack = it.stack[:len(it.stack)-1]
			it.processed = append(it.processed, node)
			children := it.childrenOf(node)
			for i := len(children) - 1; i >= 0; i-- {
				it.stack = append(it.stack, &treeFrame{node: children[i]})
			}
			if it.end != "" && node == it.end {
				it.state = stateExhausted
				it.metrics.Finished(it.algo)

				return it.doneFrame(), true
			}

			return it.emit(node), true

		case modePostOrder:
			if top.phase == 0 {
				top.children = it.childrenOf(top.node)
				top.phase = 1
				top.idx = 0
			}
			if top.idx < len(top.children) {
				child := top.children[top.idx]
				top.idx++
				it.stack = append(it.stack, &treeFrame{node: child})
				continue
			}
			node := top.node
			it.stack = it.stack[:len(it.stack)-1]
			it.processed = append(it.processed, node)
			if it.end != "" && node == it.end {
				it.state = stateExhausted
				it.metrics.Finished(it.algo)

				return it.doneFrame(), true
			}

			return it.emit(node), true

		case modeInOrder:
			switch top.phase {
			case 0:
				top.children = it.childrenOf(top.node)
				if len(top.children) == 0 {
					node := top.node
					it.stack = it.stack[:len(it.stack)-1]
					it.processed = append(it.processed, node)
					if it.end != "" && node == it.end {
						it.state = stateExhausted
						it.metrics.Finished(it.algo)

						return it.doneFrame(), true
					}

					return it.emit(node), true
				}
				first := top.children[0]
				top.idx = 1
				top.phase = 1
				it.stack = append(it.stack, &treeFrame{node: first})
				continue
			case 1:
				node := top.node
				top.phase = 2
				it.processed = append(it.processed, node)
				if it.end != "" && node == it.end {
					it.state = stateExhausted
					it.metrics.Finished(it.algo)

					return it.doneFrame(), true
				}

				return it.emit(node), true
			case 2:
				if top.idx < len(top.children) {
					next := top.children[top.idx]
					top.idx++
					it.stack = append(it.stack, &treeFrame{node: next})
					continue
				}
				it.stack = it.stack[:len(it.stack)-1]
				continue
			}
		}
	}

	it.state = stateExhausted
	it.metrics.Finished(it.algo)

	return it.doneFrame(), true
}

func (it *TreeOrderIterator) doneFrame() TreeOrderFrame {
	it.metrics.Frame(it.algo)

	return TreeOrderFrame{Focus: doneFocus, Processed: copyStrings(it.processed), Pending: []string{}}
}
