package a

import "graph"

// Reentrant: the deleter closes over g and calls Collect on it.
func reentrant(g *graph.Graph) {
	g.Insert(42, func(ptr any, ctx any) { // want "deleter passed to graph.Insert closes over and calls back into the enclosing \\*graph.Graph"
		g.Collect()
	})
}

// Safe: the deleter does not touch g at all.
func safe(g *graph.Graph) {
	g.Insert(42, func(ptr any, ctx any) {
		_ = ptr
	})
}

// Safe: the deleter closes over a different graph than the one it was
// inserted into.
func differentGraph(g, other *graph.Graph) {
	g.Insert(42, func(ptr any, ctx any) {
		other.Collect()
	})
}
