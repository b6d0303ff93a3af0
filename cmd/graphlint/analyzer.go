// Package graphlint implements a static analyzer that flags Deleter
// closures which call back into the *graph.Graph they were registered
// with — the reentrancy pattern spec.md §5 calls undefined behavior
// ("deleters must not call any graph operation on the enclosing graph").
//
// This generalizes the teacher's cmd/arenacheck SSA-walking technique
// (tracesToArenaAlloc's operand tracing through UnOp/FieldAddr/IndexAddr/
// Phi) from "does an arena-allocated value escape via return/global store"
// to "does a Deleter closure capture and call a method on the enclosing
// *graph.Graph". Like arenacheck, this is a best-effort static check, not
// a soundness guarantee: spec.md §7.3 already classifies this class of
// misuse as undefined behavior, not something the runtime detects.
package main

import (
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/buildssa"
	"golang.org/x/tools/go/ssa"
)

var Analyzer = &analysis.Analyzer{
	Name:     "graphlint",
	Doc:      "flags Deleter closures that call back into the enclosing *graph.Graph",
	Run:      run,
	Requires: []*analysis.Analyzer{buildssa.Analyzer},
}

func run(pass *analysis.Pass) (interface{}, error) {
	ssaProg := pass.ResultOf[buildssa.Analyzer].(*buildssa.SSA)

	for _, fn := range ssaProg.SrcFuncs {
		if fn == nil || fn.Blocks == nil {
			continue
		}
		checkFunction(pass, fn)
	}

	return nil, nil
}

func checkFunction(pass *analysis.Pass, fn *ssa.Function) {
	for _, block := range fn.Blocks {
		for _, instr := range block.Instrs {
			call, ok := instr.(*ssa.Call)
			if !ok {
				continue
			}
			callee := call.Call.StaticCallee()
			if callee == nil || !isGraphInsert(callee) {
				continue
			}
			if len(call.Call.Args) < 2 {
				continue
			}

			graphRecv := call.Call.Args[0]
			deleterArg := call.Call.Args[len(call.Call.Args)-1]

			closure, ok := deleterArg.(*ssa.MakeClosure)
			if !ok {
				continue
			}
			closureFn, ok := closure.Fn.(*ssa.Function)
			if !ok {
				continue
			}

			if reentersGraph(closure, closureFn, graphRecv) {
				pass.Reportf(call.Pos(),
					"deleter passed to graph.Insert closes over and calls back into the enclosing *graph.Graph; deleters must not be reentrant")
			}
		}
	}
}

// isGraphInsert reports whether fn is (*graph.Graph).Insert, matched by
// its fully qualified SSA name rather than import path, so this works
// regardless of how the graph package is imported/aliased.
func isGraphInsert(fn *ssa.Function) bool {
	return strings.Contains(fn.String(), "graph.Graph).Insert")
}

// isGraphMethod reports whether fn is a method on *graph.Graph.
func isGraphMethod(fn *ssa.Function) bool {
	return strings.Contains(fn.String(), "graph.Graph).")
}

// reentersGraph checks whether closureFn, when invoked as the closure
// created by closure, contains a call to a *graph.Graph method whose
// receiver traces back to the graph captured via graphRecv.
func reentersGraph(closure *ssa.MakeClosure, closureFn *ssa.Function, graphRecv ssa.Value) bool {
	capturedIdx := -1
	for i, binding := range closure.Bindings {
		if aliases(binding, graphRecv) {
			capturedIdx = i
			break
		}
	}
	if capturedIdx < 0 || capturedIdx >= len(closureFn.FreeVars) {
		return false
	}
	freeVar := closureFn.FreeVars[capturedIdx]

	for _, block := range closureFn.Blocks {
		for _, instr := range block.Instrs {
			call, ok := instr.(*ssa.Call)
			if !ok {
				continue
			}
			callee := call.Call.StaticCallee()
			if callee == nil || !isGraphMethod(callee) {
				continue
			}
			if len(call.Call.Args) == 0 {
				continue
			}
			if tracesTo(call.Call.Args[0], freeVar, make(map[ssa.Value]bool)) {
				return true
			}
		}
	}
	return false
}

// aliases is a shallow check: direct identity, or one side is a load of
// the other's address.
func aliases(a, b ssa.Value) bool {
	if a == b {
		return true
	}
	if u, ok := a.(*ssa.UnOp); ok && u.X == b {
		return true
	}
	if u, ok := b.(*ssa.UnOp); ok && u.X == a {
		return true
	}
	return false
}

// tracesTo walks val back through loads, field/index addressing, and phi
// nodes, the same shape the teacher's tracesToArenaAlloc uses, checking
// whether it ultimately reaches target.
func tracesTo(val, target ssa.Value, visited map[ssa.Value]bool) bool {
	if val == target {
		return true
	}
	if visited[val] {
		return false
	}
	visited[val] = true

	switch v := val.(type) {
	case *ssa.UnOp:
		return tracesTo(v.X, target, visited)
	case *ssa.FieldAddr:
		return tracesTo(v.X, target, visited)
	case *ssa.IndexAddr:
		return tracesTo(v.X, target, visited)
	case *ssa.Phi:
		for _, edge := range v.Edges {
			if tracesTo(edge, target, visited) {
				return true
			}
		}
	case *ssa.MakeInterface:
		return tracesTo(v.X, target, visited)
	}
	return false
}
