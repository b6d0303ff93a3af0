// Package graph implements the reachability graph: the public API
// (spec.md §4.3, §6) that tracks parent→child references between
// user-registered entities, honors a root set, and reclaims anything not
// reachable from a root via mark-and-sweep.
package graph

import (
	"iter"

	"github.com/go-memgraph/memgraph/pidmap"
)

// subarenaCapacity mirrors slab's per-subarena cell count, used only to
// compute the simulated node/edge arena statistics reported by Stats —
// see SPEC_FULL.md §10.2 on why these stats exist even though Node/Edge
// are plain Go-heap values rather than slab.Arena cells.
const subarenaCapacity = 128

// Config controls teardown behavior during Collect (spec.md §4.3's
// config-controlled teardown modes).
type Config struct {
	// EagerDeleteEdges returns every edge record touching a swept node
	// (both directions) to bookkeeping immediately, rather than leaving
	// them until Delete.
	EagerDeleteEdges bool
	// EagerDeleteNodes is accepted but has no effect: a Node is ordinary
	// heap memory, so a swept node is removed from the node set and left to
	// the garbage collector whether or not this is set, and Stats reports
	// the same node figures either way.
	EagerDeleteNodes bool
	// Ctx is passed unmodified as the second argument to every Deleter
	// invocation, letting deleters reach a larger runtime without a
	// per-node closure.
	Ctx any
}

// Graph owns the node set, the root set, and an id generator. It is not
// safe for concurrent use (spec.md §5): a Graph is owned exclusively by
// whatever goroutine created it.
type Graph struct {
	cfg    Config
	nodes  *pidmap.Set[*Node]
	roots  *pidmap.Set[*Node]
	nextID uint64

	nodeHighWater int
	edgeHighWater int
	edgeLive      int

	deleted bool
}

// New returns a fresh Graph with an empty node set, empty root set, and
// the given teardown configuration.
func New(config Config) *Graph {
	return &Graph{
		cfg:   config,
		nodes: pidmap.NewSet[*Node](),
		roots: pidmap.NewSet[*Node](),
	}
}

func (g *Graph) checkAlive(op string) {
	if g.deleted {
		panic(violation(op, "graph already torn down by Delete", hintUseAfterDelete))
	}
}

func (g *Graph) checkNode(n *Node, op string) {
	if n == nil || !g.nodes.Has(n) {
		panic(violation(op, "node was not returned by this Graph's Insert (or was already collected)", hintForeignNode))
	}
}

// Insert records (ptr, del) as a new node and adds it to the node set.
// Ownership of ptr transfers to the Graph: only the Graph may invoke del
// on ptr thereafter, and the caller must not free ptr itself. Panics
// (fatal) if ptr or del is nil.
func (g *Graph) Insert(ptr any, del Deleter) *Node {
	g.checkAlive("Insert")
	if ptr == nil {
		panic(violation("Insert", "ptr must not be nil", hintNilPtr))
	}
	if del == nil {
		panic(violation("Insert", "deleter must not be nil", hintNilDeleter))
	}
	n := &Node{
		id:       g.nextID,
		ptr:      ptr,
		deleter:  del,
		children: pidmap.NewMap[*Node, *Edge](),
		parents:  pidmap.NewMap[*Node, *Edge](),
	}
	g.nextID++
	g.nodes.Add(n)
	g.nodeHighWater++
	return n
}

// Root adds n to the root set. Idempotent: rooting an already-rooted node
// is a no-op. Every node reachable from a root through a positive-weight
// edge survives Collect.
func (g *Graph) Root(n *Node) {
	g.checkAlive("Root")
	g.checkNode(n, "Root")
	g.roots.Add(n)
}

// Unroot demotes n out of the root set. Not present in the original C
// library (spec.md §9 notes its absence and invites implementers to add
// it); this implementation does, since there is no other way to make a
// previously-rooted cycle collectible.
func (g *Graph) Unroot(n *Node) {
	g.checkAlive("Unroot")
	g.checkNode(n, "Unroot")
	g.roots.Remove(n)
}

// IsRoot reports whether n is currently in the root set.
func (g *Graph) IsRoot(n *Node) bool {
	g.checkAlive("IsRoot")
	g.checkNode(n, "IsRoot")
	return g.roots.Has(n)
}

// Inc declares a logical reference from parent to child. If no edge
// record exists for the pair, one is created (ref_count=1) along with its
// symmetric counterpart in child.parents; otherwise both counterparts'
// ref_count are incremented. The edge symmetry invariant (spec.md §3)
// holds before and after every call.
func (g *Graph) Inc(parent, child *Node) {
	g.checkAlive("Inc")
	g.checkNode(parent, "Inc")
	g.checkNode(child, "Inc")

	if pc, ok := parent.children.Get(child); ok {
		cp, ok2 := child.parents.Get(parent)
		if !ok2 {
			panic(violation("Inc", "edge asymmetry: child.parents missing the counterpart of an existing parent.children entry", hintAsymmetry))
		}
		pc.refCount++
		cp.refCount++
		return
	}

	pc := &Edge{node: child, refCount: 1}
	cp := &Edge{node: parent, refCount: 1}
	parent.children.Put(child, pc)
	child.parents.Put(parent, cp)
	g.edgeHighWater += 2
	g.edgeLive += 2
}

// Dec withdraws a logical reference from parent to child, decrementing
// both counterparts of the edge. Fatal if either counterpart is missing
// or already at zero: logical underflow is a caller bug, not a
// recoverable condition (spec.md §4.3).
func (g *Graph) Dec(parent, child *Node) {
	g.checkAlive("Dec")
	g.checkNode(parent, "Dec")
	g.checkNode(child, "Dec")

	pc, ok := parent.children.Get(child)
	if !ok {
		panic(violation("Dec", "no edge exists for (parent, child); call Inc first", hintDecMissing))
	}
	cp, ok2 := child.parents.Get(parent)
	if !ok2 {
		panic(violation("Dec", "edge asymmetry: child.parents missing the counterpart of an existing parent.children entry", hintAsymmetry))
	}
	if pc.refCount == 0 || cp.refCount == 0 {
		panic(violation("Dec", "ref_count is already zero for this (parent, child) pair", hintDecUnderflow))
	}
	pc.refCount--
	cp.refCount--
}

// NodeCount returns the current node set size.
func (g *Graph) NodeCount() int {
	return g.nodes.Len()
}

// Nodes returns a read-only snapshot view of the live node set, in
// unspecified order. Safe to range over even if the caller later mutates
// the graph (e.g. inside a loop body that calls Collect).
func (g *Graph) Nodes() iter.Seq[*Node] {
	snapshot := g.nodes.Keys()
	return func(yield func(*Node) bool) {
		for _, n := range snapshot {
			if !yield(n) {
				return
			}
		}
	}
}

// Delete tears the graph down: calls every still-live node's deleter
// (with delete_edges=false, delete_node=false, matching the original
// mgraph_delete), then drops both top-level containers. Because the whole
// graph is being discarded in the same call, skipping eager per-node
// release here is intentional, not a leak — see SPEC_FULL.md §11.
func (g *Graph) Delete() {
	if g.deleted {
		panic(violation("Delete", "graph was already deleted", hintDoubleDelete))
	}
	for _, n := range g.nodes.Keys() {
		n.deleter(n.ptr, g.cfg.Ctx)
	}
	g.nodes.Clear()
	g.roots.Clear()
	g.deleted = true
}
