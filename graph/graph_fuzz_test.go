package graph

import "testing"

// FuzzChainCollect builds a chain of n nodes under a root, severs the
// first link after churn iterations of Inc/Dec churn, and checks that
// Collect's reclaimed count never exceeds the node count and that the
// root itself is never reclaimed.
func FuzzChainCollect(f *testing.F) {
	f.Add(0, 1)
	f.Add(3, 5)
	f.Add(50, 0)

	f.Fuzz(func(t *testing.T, n int, churn int) {
		if n < 0 || n > 2000 {
			return
		}
		if churn < 0 || churn > 100 {
			return
		}

		g := New(Config{})
		root := g.Insert("root", func(any, any) {})
		g.Root(root)

		nodes := make([]*Node, n)
		for i := range nodes {
			nodes[i] = g.Insert(i, func(any, any) {})
		}
		for i := 0; i < n; i++ {
			var parent *Node
			if i == 0 {
				parent = root
			} else {
				parent = nodes[i-1]
			}
			g.Inc(parent, nodes[i])
		}

		for i := 0; i < churn && n > 0; i++ {
			g.Inc(root, nodes[0])
			g.Dec(root, nodes[0])
		}
		if n > 0 {
			g.Dec(root, nodes[0])
		}

		before := g.NodeCount()
		reclaimed := g.Collect()
		if reclaimed < 0 || reclaimed > before {
			t.Fatalf("reclaimed %d out of range for %d nodes", reclaimed, before)
		}
		found := false
		for node := range g.Nodes() {
			if node == root {
				found = true
			}
		}
		if !found {
			t.Fatal("root must never be reclaimed while still rooted")
		}
	})
}
