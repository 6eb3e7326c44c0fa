// Package heapalloc adapts the host platform heap to a pluggable
// allocator contract. It never manages memory itself: every request is
// brokered to malloc, to the platform's aligned malloc, or rejected
// when the platform cannot satisfy it.
package heapalloc

import (
	"unsafe"
)

// DefaultName is what Name reports for an allocator that was never
// given a name. The name is diagnostic only.
const DefaultName = "heapalloc.MallocAllocator"

// Allocator is the contract generic containers parameterize over.
//
// The flags argument is accepted for contract compatibility and
// ignored by every implementation in this package, as is the size
// argument of Free.
type Allocator interface {
	// Alloc returns a block of at least size bytes aligned to at
	// least MinAlignment, or nil if the platform heap fails.
	Alloc(size uint, flags int) unsafe.Pointer

	// AllocAligned returns a block p of at least size bytes with
	// (uintptr(p)+alignmentOffset) % alignment == 0, or nil when the
	// platform heap fails or cannot satisfy the constraint.
	AllocAligned(size, alignment, alignmentOffset uint, flags int) unsafe.Pointer

	// Free releases a block previously returned by Alloc or
	// AllocAligned. Freeing nil is a no-op.
	Free(ptr unsafe.Pointer, size uint)

	Name() string
	SetName(name string)

	// Equal reports whether blocks allocated by one allocator may be
	// freed by the other.
	Equal(other Allocator) bool
}

// MallocAllocator satisfies Allocator by delegating to the host heap.
// It holds no allocation state; all instances are interchangeable and
// compare equal. Ownership of every returned block passes to the
// caller, who must release it through Free on any MallocAllocator.
//
// The zero value is ready to use.
type MallocAllocator struct {
	name string

	// heap overrides the process-wide host heap. Nil outside tests.
	heap *heap
}

var _ Allocator = (*MallocAllocator)(nil)

func NewMallocAllocator() *MallocAllocator {
	return &MallocAllocator{}
}

func NewMallocAllocatorNamed(name string) *MallocAllocator {
	return &MallocAllocator{name: name}
}

func (a *MallocAllocator) host() *heap {
	if a.heap != nil {
		return a.heap
	}
	return hostHeap()
}

func (a *MallocAllocator) Alloc(size uint, _ int) unsafe.Pointer {
	return heapAlloc(a.host(), size)
}

func (a *MallocAllocator) AllocAligned(size, alignment, alignmentOffset uint, _ int) unsafe.Pointer {
	return heapAllocAligned(a.host(), size, alignment, alignmentOffset)
}

func (a *MallocAllocator) Free(ptr unsafe.Pointer, _ uint) {
	heapFree(a.host(), ptr)
}

func (a *MallocAllocator) Name() string {
	if a.name == "" {
		return DefaultName
	}
	return a.name
}

func (a *MallocAllocator) SetName(name string) {
	a.name = name
}

// Equal is true for any two MallocAllocators regardless of name: they
// all draw from the same host heap, so a container may move blocks
// between two of them without copying.
func (a *MallocAllocator) Equal(other Allocator) bool {
	_, ok := other.(*MallocAllocator)
	return ok
}
