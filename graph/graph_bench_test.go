package graph

import "testing"

func BenchmarkInsertRootCollect(b *testing.B) {
	for i := 0; i < b.N; i++ {
		g := New(Config{})
		root := g.Insert(i, func(any, any) {})
		g.Root(root)
		for j := 0; j < 50; j++ {
			child := g.Insert(j, func(any, any) {})
			g.Inc(root, child)
		}
		g.Collect()
	}
}

func BenchmarkCollectChain(b *testing.B) {
	for i := 0; i < b.N; i++ {
		g := New(Config{})
		root := g.Insert("root", func(any, any) {})
		g.Root(root)

		prev := root
		for j := 0; j < 100; j++ {
			n := g.Insert(j, func(any, any) {})
			g.Inc(prev, n)
			prev = n
		}
		g.Collect()
	}
}

func BenchmarkEagerTeardown(b *testing.B) {
	g := New(Config{EagerDeleteEdges: true, EagerDeleteNodes: true})
	root := g.Insert("root", func(any, any) {})
	g.Root(root)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := g.Insert(i, func(any, any) {})
		g.Inc(root, n)
		g.Dec(root, n)
		g.Collect()
	}
}
