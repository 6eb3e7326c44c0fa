//go:build !linux && !windows

package heapalloc

import (
	"unsafe"

	"github.com/smasher164/mem"
)

// openHostHeap covers platforms without a native aligned malloc,
// Darwin included. Plain allocations come from the page allocator;
// aligned requests beyond MinAlignment are unsatisfiable here.
func openHostHeap() *heap {
	return &heap{
		profile: ProfileNone,
		malloc: func(size uintptr) unsafe.Pointer {
			return mem.Alloc(uint(size))
		},
		free: mem.Free,
	}
}
