package graph

import "unsafe"

// ArenaStats reports the five fields the original C library's
// mgraph_collect_garbage dumps (in commented-out printf diagnostics) after
// every collection for its node_arena/edge_arena. SPEC_FULL.md §10
// restores this as a real, opt-in accessor rather than leaving it as dead
// commented-out code. Since Node/Edge here are ordinary Go-heap values
// rather than slab.Arena cells (see DESIGN.md), these figures are computed
// from the Graph's own bookkeeping counters using the same subarena
// capacity (128) the slab package uses, rather than read off a real Arena.
type ArenaStats struct {
	ItemSize         int
	ItemCount        int
	Capacity         int
	SubarenaCapacity int
	SubarenaCount    int
}

// GraphStats pairs the simulated node-arena and edge-arena statistics.
type GraphStats struct {
	Nodes ArenaStats
	Edges ArenaStats
}

func ceilDivSubarenas(highWater int) int {
	if highWater == 0 {
		return 0
	}
	return (highWater + subarenaCapacity - 1) / subarenaCapacity
}

// Stats returns the current node and edge accounting. It never shrinks
// SubarenaCount as nodes/edges are freed, matching a real Arena, which
// never releases a subarena until Finalize.
func (g *Graph) Stats() GraphStats {
	nodeSub := ceilDivSubarenas(g.nodeHighWater)
	edgeSub := ceilDivSubarenas(g.edgeHighWater)
	return GraphStats{
		Nodes: ArenaStats{
			ItemSize:         int(unsafe.Sizeof(Node{})),
			ItemCount:        g.nodes.Len(),
			Capacity:         nodeSub * subarenaCapacity,
			SubarenaCapacity: subarenaCapacity,
			SubarenaCount:    nodeSub,
		},
		Edges: ArenaStats{
			ItemSize:         int(unsafe.Sizeof(Edge{})),
			ItemCount:        g.edgeLive,
			Capacity:         edgeSub * subarenaCapacity,
			SubarenaCapacity: subarenaCapacity,
			SubarenaCount:    edgeSub,
		},
	}
}
