// Package track records, per resolved node, which state paths were read
// while producing it, and builds the reverse index that maps a changed path
// back to the nodes that must be recomputed.
//
// Tracking nodes form a shadow of the output tree. They live in an arena and
// reference each other by integer id; a parent reference is navigation only,
// never ownership. The shadow tree is rebuilt fresh on every resolution pass,
// so ids are stable within one pass and meaningless across passes.
package track

import (
	"github.com/go-scals/scals/pkg/errors"
	"github.com/go-scals/scals/pkg/state"
)

// NodeID indexes a tracking node in its tracker's arena.
type NodeID int

// NoNode is the id of the absent parent above the root scope.
const NoNode NodeID = -1

// Node is one tracking node: the read-set of a single resolved output node.
type Node struct {
	// ID is the node's arena index.
	ID NodeID
	// Parent is the enclosing scope's node, or NoNode for a root.
	Parent NodeID
	// Reads lists the canonical state paths read while resolving the node,
	// in first-read order, deduplicated.
	Reads []string
	// Snapshot optionally captures the local state visible when the node
	// was resolved (iteration bindings at that point).
	Snapshot state.Value

	readSet map[string]struct{}
}

// Tracker accumulates the shadow tree for one resolution pass. Scopes nest:
// Begin pushes a node as current, End pops back to its parent. Reads are
// recorded against the innermost open scope.
type Tracker struct {
	nodes []Node
	stack []NodeID
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Begin opens a tracking scope and returns its node id. The new node's
// parent is the previously current scope.
func (t *Tracker) Begin() NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		ID:      id,
		Parent:  t.Current(),
		readSet: make(map[string]struct{}),
	})
	t.stack = append(t.stack, id)
	return id
}

// End closes the current scope. Ending a scope that was never begun is a
// contract violation and panics.
func (t *Tracker) End() {
	if len(t.stack) == 0 {
		errors.Contract("track.End", "End called with no open scope")
	}
	t.stack = t.stack[:len(t.stack)-1]
}

// Current returns the innermost open scope, or NoNode.
func (t *Tracker) Current() NodeID {
	if len(t.stack) == 0 {
		return NoNode
	}
	return t.stack[len(t.stack)-1]
}

// Record attributes a state read to the current scope. Reads outside any
// scope are dropped; paths are canonicalized before storage.
func (t *Tracker) Record(path string) {
	current := t.Current()
	if current == NoNode {
		return
	}
	canonical := state.ParsePath(path).String()
	if canonical == "" {
		return
	}
	node := &t.nodes[current]
	if _, seen := node.readSet[canonical]; seen {
		return
	}
	node.readSet[canonical] = struct{}{}
	node.Reads = append(node.Reads, canonical)
}

// CaptureSnapshot stores the local state visible to the current scope.
func (t *Tracker) CaptureSnapshot(v state.Value) {
	if current := t.Current(); current != NoNode {
		t.nodes[current].Snapshot = v
	}
}

// Node returns the tracking node for id, or nil when out of range.
func (t *Tracker) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return &t.nodes[id]
}

// Nodes returns the arena in creation (depth-first pre-) order.
func (t *Tracker) Nodes() []Node {
	return t.nodes
}

// Len returns the number of tracking nodes created so far.
func (t *Tracker) Len() int {
	return len(t.nodes)
}
