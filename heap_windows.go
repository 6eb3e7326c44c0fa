//go:build windows

package heapalloc

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	ucrtbase = windows.NewLazySystemDLL("ucrtbase.dll")

	procMalloc              = ucrtbase.NewProc("malloc")
	procFree                = ucrtbase.NewProc("free")
	procAlignedMalloc       = ucrtbase.NewProc("_aligned_malloc")
	procAlignedOffsetMalloc = ucrtbase.NewProc("_aligned_offset_malloc")
	procAlignedFree         = ucrtbase.NewProc("_aligned_free")
)

func openHostHeap() *heap {
	return &heap{
		profile: ProfileWindows,
		malloc: func(size uintptr) unsafe.Pointer {
			r, _, _ := procMalloc.Call(size)
			return unsafe.Pointer(r) //nolint:govet
		},
		free: func(ptr unsafe.Pointer) {
			_, _, _ = procFree.Call(uintptr(ptr))
		},
		alignedMalloc: func(size, alignment uintptr) unsafe.Pointer {
			r, _, _ := procAlignedMalloc.Call(size, alignment)
			return unsafe.Pointer(r) //nolint:govet
		},
		alignedOffsetMalloc: func(size, alignment, offset uintptr) unsafe.Pointer {
			r, _, _ := procAlignedOffsetMalloc.Call(size, alignment, offset)
			return unsafe.Pointer(r) //nolint:govet
		},
		alignedFree: func(ptr unsafe.Pointer) {
			_, _, _ = procAlignedFree.Call(uintptr(ptr))
		},
	}
}
