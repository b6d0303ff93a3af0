package graph

// Edge is a directed reference record. refCount is the number of logical
// references this edge represents; Dec never removes the record, it only
// drops refCount toward zero, at which point the edge stops contributing
// to reachability (spec.md §3).
//
// node records the adjacent node but is not read anywhere in this package
// (Stats included) — per SPEC_FULL.md §11's resolution of spec.md §9's open
// question, traversal and all symmetry bookkeeping key exclusively off the
// adjacency maps (children/parents), never off this field.
type Edge struct {
	node     *Node
	refCount uint32
}

// RefCount returns the edge's current logical reference count.
func (e *Edge) RefCount() uint32 {
	return e.refCount
}
