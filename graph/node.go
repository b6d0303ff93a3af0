package graph

import "github.com/go-memgraph/memgraph/pidmap"

// Deleter finalizes a node's payload. ctx is whatever was supplied as
// Config.Ctx at graph creation. A deleter must not call any method on the
// Graph that invoked it (spec.md §5: deleters are not reentrant).
type Deleter func(ptr any, ctx any)

// Node is an opaque handle to a tracked entity. The zero value is not
// usable; Nodes are only produced by (*Graph).Insert and remain valid
// until reclaimed by Collect or the owning Graph's Delete.
type Node struct {
	id       uint64
	ptr      any
	deleter  Deleter
	children *pidmap.Map[*Node, *Edge]
	parents  *pidmap.Map[*Node, *Edge]
}

// NodePtr returns the payload pointer supplied at Insert. Exposed as a free
// function, mirroring the original C library's node_ptr(const Node *),
// rather than a method, per SPEC_FULL.md §10.
func NodePtr(n *Node) any {
	return n.ptr
}

// ID returns the node's monotonically assigned identity, unique within the
// graph that created it.
func (n *Node) ID() uint64 {
	return n.id
}
