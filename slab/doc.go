// Package slab provides a size-specialized arena allocator.
//
// # Overview
//
// An Arena serves one fixed object size. It bump-allocates from a chain of
// fixed-capacity subarenas (128 cells each) and recycles individually-freed
// cells through an intrusive LIFO free-list threaded through a small header
// placed just before each payload. Addresses returned by Alloc never move
// and stay valid until a matching Dealloc or the Arena's Finalize.
//
// # Why not Go's experimental arena package
//
// Go's GOEXPERIMENT=arenas package only supports freeing everything in an
// arena at once. slab frees individual cells — for example a payload whose
// graph node a mark-and-sweep collection has just found unreachable — while
// the rest of the arena's cells stay live, a shape the experimental package
// cannot express. (The graph package itself keeps its Node and Edge values
// on the Go heap, not in a slab.Arena.) slab reimplements
// the descriptor/subarena/free-list design directly over unsafe.Pointer
// arithmetic instead.
//
// # Usage
//
//	a := slab.New(int(unsafe.Sizeof(myStruct{})), "myStruct")
//	p := a.Alloc()
//	defer a.Finalize()
//	v := (*myStruct)(p)
//	v.Field = 1
//	a.Dealloc(p) // v's cell is now recyclable by the next Alloc
//
// Or with the generic Ptr[T] wrapper:
//
//	p := slab.Alloc[myStruct](a)
//	p.Get().Field = 1
//	slab.Free(a, p)
package slab
