package graph

import "github.com/go-memgraph/memgraph/pidmap"

// Collect runs mark-and-sweep: every node reachable from the root set
// through edges with a positive ref_count is retained; everything else is
// swept, with each swept node's deleter invoked exactly once. Returns the
// number of nodes reclaimed.
//
// Deleters run in an unspecified order (hash-set iteration order) and must
// not call back into this Graph (spec.md §5).
func (g *Graph) Collect() int {
	g.checkAlive("Collect")

	visited := pidmap.NewSet[*Node]()
	for _, r := range g.roots.Keys() {
		mark(r, visited)
	}

	var swept []*Node
	for _, n := range g.nodes.Keys() {
		if !visited.Has(n) {
			swept = append(swept, n)
		}
	}

	for _, n := range swept {
		g.sweep(n)
	}
	return len(swept)
}

// mark performs a depth-first traversal over children edges with
// ref_count > 0, adding each node to visited on first encounter. The
// visited-set insertion is the sole cycle-break (spec.md §4.3): a node
// already in visited is never revisited, so recursion depth is bounded by
// the longest acyclic path in the reachable subgraph. parents is never
// consulted here — it exists only to support symmetric-edge cleanup.
func mark(n *Node, visited *pidmap.Set[*Node]) {
	if !visited.Add(n) {
		return
	}
	n.children.Each(func(child *Node, e *Edge) {
		if e.refCount > 0 {
			mark(child, visited)
		}
	})
}

// sweep invokes n's deleter, then finalizes its bookkeeping per the
// Graph's eager-teardown configuration (spec.md §4.3's config table), and
// removes n from the node set.
func (g *Graph) sweep(n *Node) {
	n.deleter(n.ptr, g.cfg.Ctx)

	if g.cfg.EagerDeleteEdges {
		n.children.Each(func(c *Node, _ *Edge) {
			c.parents.Delete(n)
		})
		n.parents.Each(func(p *Node, _ *Edge) {
			p.children.Delete(n)
		})
		g.edgeLive -= 2 * (n.children.Len() + n.parents.Len())
	}
	n.children.Clear()
	n.parents.Clear()

	g.nodes.Remove(n)
	_ = g.cfg.EagerDeleteNodes // no effect, not even on Stats: Node is plain heap memory, reclaimed by the GC once unreferenced.
}
