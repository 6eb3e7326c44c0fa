package heapalloc

import (
	"sync/atomic"
	"unsafe"
)

// heap is the primitive table for one host heap. Slots a profile never
// routes to stay nil: ProfileNone fills only malloc/free, ProfilePOSIX
// adds alignedMalloc, ProfileWindows fills everything.
type heap struct {
	profile Profile

	malloc              func(size uintptr) unsafe.Pointer
	free                func(ptr unsafe.Pointer)
	alignedMalloc       func(size, alignment uintptr) unsafe.Pointer
	alignedOffsetMalloc func(size, alignment, offset uintptr) unsafe.Pointer
	alignedFree         func(ptr unsafe.Pointer)
}

var host atomic.Pointer[heap]

// hostHeap returns the process-wide heap, resolving it from the build
// target on first use. The resolved value never changes afterwards.
func hostHeap() *heap {
	if h := host.Load(); h != nil {
		return h
	}
	h := openHostHeap()
	if host.CompareAndSwap(nil, h) {
		return h
	}
	return host.Load()
}

// HostProfile reports the capability profile of the process-wide heap.
func HostProfile() Profile {
	return hostHeap().profile
}
