// Package memgraph is the module root for a tracked-reference memory
// manager: a size-specialized slab allocator (package slab), a
// mark-and-sweep reachability graph (package graph) that tracks arbitrary
// Go values reachable from a root set, and the pointer-identity hashed
// containers (package pidmap) the graph indexes its edges with.
//
// # Overview
//
// Clients register entities with a graph.Graph via Insert, supplying a
// Deleter that finalizes the entity's payload. Logical references between
// entities are declared with Inc/Dec, which maintain a symmetric,
// per-edge reference count. Designated roots (graph.Root) are guaranteed
// to survive; everything else is reclaimed the moment it becomes
// unreachable from a root, the next time Collect runs.
//
//	g := graph.New(graph.Config{})
//	a := g.Insert(&Thing{}, func(ptr any, ctx any) { /* finalize */ })
//	g.Root(a)
//	b := g.Insert(&Thing{}, func(ptr any, ctx any) { /* finalize */ })
//	g.Inc(a, b)
//	g.Dec(a, b)
//	g.Collect() // b is unreachable and is reclaimed
//
// # Packages
//
// slab provides the fixed-size arena allocator spec.md describes: stable
// addresses, O(1) individual free, and subarena growth bounded by a fixed
// per-chunk cell count. graph.Node and graph.Edge are plain Go-heap values
// rather than slab.Arena cells (packing them into a raw byte-backed cell
// would hide their live pointers from the garbage collector; see
// DESIGN.md); slab is instead the allocator of choice for pointer-free
// fixed-size payloads a caller tracks through the graph, the pattern
// TestIntegrationPoolBackedGraph demonstrates.
//
// pidmap provides the hashed associative container and hashed set the
// graph uses to index each node's children/parents and the graph's own
// node/root sets, keyed by pointer identity via a seeded maphash.Hasher.
//
// graph provides the public reachability API described above, plus the
// mark-and-sweep Collect algorithm and the config-controlled teardown
// modes that trade collection cost against how much node/edge bookkeeping
// a sweep releases immediately versus leaves for Delete.
//
// # Concurrency
//
// None of these packages are safe for concurrent use. A Graph and its
// bookkeeping are owned exclusively by whatever goroutine created them;
// migrating ownership across goroutines requires an external
// happens-before boundary.
//
// See SPEC_FULL.md and DESIGN.md in the module root for the full design
// rationale and the grounding ledger this implementation was built from.
package memgraph
