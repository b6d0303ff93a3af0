// Package slab implements a size-specialized slab allocator: one Arena
// serves fixed-size objects from a chain of growable subarenas and recycles
// freed cells through an intrusive LIFO free-list threaded through a small
// header (Descriptor) placed immediately before each payload.
//
// This is a from-scratch, descriptor-addressed allocator rather than a
// wrapper around Go's experimental "arena" package: the spec this package
// implements requires per-object Dealloc with O(1) descriptor recovery by
// pointer subtraction, which a bump-only, reset-everything-at-once arena
// cannot provide. See DESIGN.md for the full trade-off discussion.
//
// Addresses handed out by Alloc are stable for the life of the object: this
// package never relocates or compacts live cells.
package slab

import "unsafe"

// subarenaCapacity is the number of alloc-sized cells per subarena. Fixed
// (not doubled on growth) because the free-list, not subarena growth,
// absorbs most allocation churn for fixed-size records with high
// insert/delete turnover.
const subarenaCapacity = 128

// alignWidth widens the original C implementation's 4-byte descriptor
// rounding to a full pointer width, per spec.md's redesign note: 4-byte
// rounding is unsafe on platforms (and for payload types) requiring 8- or
// 16-byte alignment.
const alignWidth = unsafe.Alignof(uintptr(0))

// descriptor is the per-cell header. prevFreed links a free cell onto the
// arena's free-list; it is meaningless while the cell is live.
type descriptor struct {
	prevFreed unsafe.Pointer
}

func alignUp(n, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}

var descriptorSize = alignUp(unsafe.Sizeof(descriptor{}), alignWidth)

// subarena is one contiguous block of subarenaCapacity alloc-sized cells.
// Subarenas form a singly-linked list, newest first; only the newest is
// ever bump-allocated from.
type subarena struct {
	prev  *subarena
	block []byte // kept alive here; next/end below are addresses into it
}

// Arena serves fixed-size objects of itemSize bytes each, from a chain of
// subarenas, recycling freed cells via an intrusive free-list.
//
// Arena is not safe for concurrent use: per spec.md §5, a graph and its
// arenas are owned exclusively by whatever goroutine created them.
type Arena struct {
	name      string
	itemSize  uintptr
	allocSize uintptr

	last *subarena
	next uintptr // address of the next descriptor to bump-allocate
	end  uintptr // address just past the current subarena's block

	lastFreed unsafe.Pointer // descriptor of the most recently freed cell
	itemCount int
	finalized bool
}

// New prepares an empty Arena for objects of the given byte size. name is
// diagnostic only. Panics (fatal, per spec.md §7.1) if itemSize < 1.
func New(itemSize int, name string) *Arena {
	if itemSize < 1 {
		panic(violation("New", "item_size must be >= 1", hintItemSize))
	}
	a := &Arena{
		name:      name,
		itemSize:  uintptr(itemSize),
		allocSize: alignUp(uintptr(itemSize)+descriptorSize, alignWidth),
	}
	a.growSubarena()
	return a
}

func (a *Arena) growSubarena() {
	sa := &subarena{
		prev:  a.last,
		block: make([]byte, a.allocSize*subarenaCapacity),
	}
	a.last = sa
	base := uintptr(unsafe.Pointer(&sa.block[0]))
	a.next = base
	a.end = base + uintptr(len(sa.block))
}

// Alloc returns a pointer to an itemSize-byte region. Memory contents are
// unspecified. Reuses the most recently freed cell (LIFO) if one exists;
// otherwise bump-allocates from the current subarena, growing a new one
// first if the cursor has reached the end of the block.
func (a *Arena) Alloc() unsafe.Pointer {
	if a.finalized {
		panic(violation("Alloc", "allocation after Finalize", hintUseAfterFinal))
	}
	a.itemCount++

	if a.lastFreed != nil {
		descAddr := a.lastFreed
		d := (*descriptor)(descAddr)
		a.lastFreed = d.prevFreed
		d.prevFreed = nil
		return unsafe.Pointer(uintptr(descAddr) + descriptorSize)
	}

	if a.next == a.end {
		a.growSubarena()
	}
	spot := a.next
	a.next += a.allocSize
	return unsafe.Pointer(spot + descriptorSize)
}

// Dealloc links ptr's descriptor onto the head of the free-list. ptr must
// have been returned by this Arena's Alloc and must not already be freed;
// violating either is undefined per spec.md §7.3 and is not detected here
// beyond the nil check below.
func (a *Arena) Dealloc(ptr unsafe.Pointer) {
	if a.finalized {
		panic(violation("Dealloc", "dealloc after Finalize", hintUseAfterFinal))
	}
	if ptr == nil {
		panic(violation("Dealloc", "dealloc of a nil pointer", hintNilDealloc))
	}
	descAddr := unsafe.Pointer(uintptr(ptr) - descriptorSize)
	d := (*descriptor)(descAddr)
	d.prevFreed = a.lastFreed
	a.lastFreed = descAddr
	a.itemCount--
}

// Finalize releases every subarena. It does not invoke any user callback;
// per spec.md §4.1, calling deleters first is the graph's responsibility.
func (a *Arena) Finalize() {
	if a.finalized {
		panic(violation("Finalize", "arena already finalized", hintDoubleFinalize))
	}
	a.last = nil
	a.lastFreed = nil
	a.finalized = true
}

// ItemSize returns the caller-visible object size in bytes.
func (a *Arena) ItemSize() int { return int(a.itemSize) }

// ItemCount returns the current live object count (allocations minus
// deallocations, per spec.md §3's accounting invariant).
func (a *Arena) ItemCount() int { return a.itemCount }

// SubarenaCount returns the number of subarena blocks currently held.
func (a *Arena) SubarenaCount() int {
	count := 0
	for sa := a.last; sa != nil; sa = sa.prev {
		count++
	}
	return count
}

// Capacity returns SubarenaCount * the fixed per-subarena cell count.
func (a *Arena) Capacity() int {
	return a.SubarenaCount() * subarenaCapacity
}
