package slab

import "unsafe"

// Ptr is a type-safe handle on an Arena-allocated value of type T, in the
// same spirit as the teacher's Ptr[T] (safearena.go): a single generic
// Alloc/Get/Deref trio replaces manual unsafe.Pointer casts at call sites.
// Ptr holds only the payload pointer; it does not record which Arena it
// came from, so Free (Arena.Dealloc, here explicit rather than implicit on
// whole-arena teardown) takes the Arena as an argument.
//
// Unlike the teacher's Ptr[T], which tracked a whole-arena "freed" flag
// (Go's experimental arena only frees everything at once), Ptr[T] here
// carries no freed state at all: this package's Arena frees individual
// cells, and a Ptr used after its Free is not detected.
type Ptr[T any] struct {
	raw unsafe.Pointer
}

// Alloc reserves space for a T in a and returns a typed handle to it.
// Contents are unspecified (a recycled cell retains its previous value)
// until the caller initializes them through Get. Arena must have been
// created with New(int(unsafe.Sizeof(zero)), name).
func Alloc[T any](a *Arena) Ptr[T] {
	return Ptr[T]{raw: a.Alloc()}
}

// Get returns the typed pointer to the underlying storage. The caller is
// responsible for not using it past a matching Free or the owning Arena's
// Finalize — this package does not track per-pointer liveness beyond what
// Arena.Dealloc/Finalize already enforce for raw pointers.
func (p Ptr[T]) Get() *T {
	return (*T)(p.raw)
}

// Deref copies the value out.
func (p Ptr[T]) Deref() T {
	return *p.Get()
}

// Free returns the cell to a's free-list. a must be the same Arena that
// produced p.
func Free[T any](a *Arena, p Ptr[T]) {
	a.Dealloc(p.raw)
}
