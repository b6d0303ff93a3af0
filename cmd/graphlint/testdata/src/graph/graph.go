// Package graph is a minimal stand-in for github.com/go-memgraph/memgraph/graph,
// just enough surface for graphlint's testdata fixtures to exercise the
// SSA patterns the analyzer checks, without this standalone tool module
// depending on the root module.
package graph

type Deleter func(ptr any, ctx any)

type Node struct{}

type Graph struct{}

func New() *Graph { return &Graph{} }

func (g *Graph) Insert(ptr any, del Deleter) *Node { return &Node{} }
func (g *Graph) Root(n *Node)                      {}
func (g *Graph) Collect() int                      { return 0 }
func (g *Graph) Delete()                           {}
