package heapalloc

import (
	"unsafe"
)

// Profile identifies which aligned-allocation primitives the host heap
// provides. It is resolved once per process from the build target and
// never changes afterwards.
type Profile int32

const (
	// ProfileNone means the platform has no native aligned malloc.
	// Aligned requests succeed only when plain malloc's minimum
	// alignment already satisfies them.
	ProfileNone Profile = iota

	// ProfilePOSIX means the platform has memalign(alignment, size)
	// with no offset control. Blocks are freed with plain free.
	ProfilePOSIX

	// ProfileWindows means the platform has _aligned_malloc,
	// _aligned_offset_malloc and _aligned_free.
	ProfileWindows
)

func (p Profile) String() string {
	switch p {
	case ProfileNone:
		return "none"
	case ProfilePOSIX:
		return "posix"
	case ProfileWindows:
		return "windows"
	}
	return "unknown"
}

// heapAlloc is the unconstrained-alignment path. On Windows every
// block must come from the aligned family so that _aligned_free can
// release it; everywhere else plain malloc already guarantees
// MinAlignment.
func heapAlloc(h *heap, size uint) unsafe.Pointer {
	if h.profile == ProfileWindows {
		return h.alignedMalloc(uintptr(size), MinAlignment)
	}
	return h.malloc(uintptr(size))
}

// heapAllocAligned maps a (size, alignment, offset) request to exactly
// one primitive of h, or to nil when no primitive can satisfy it. The
// offset%alignment == 0 test is used instead of offset == 0 because a
// block aligned at 0 is also aligned at any multiple of alignment.
func heapAllocAligned(h *heap, size, alignment, alignmentOffset uint) unsafe.Pointer {
	if alignment == 0 {
		alignment = 1
	}
	if !isPow2(alignment) {
		return nil
	}
	switch h.profile {
	case ProfilePOSIX:
		// memalign has no offset parameter. An unaligned offset is
		// rejected rather than silently mis-placed.
		if alignmentOffset%alignment != 0 {
			return nil
		}
		return h.alignedMalloc(uintptr(size), uintptr(alignment))
	case ProfileWindows:
		if alignmentOffset%alignment == 0 {
			return h.alignedMalloc(uintptr(size), uintptr(alignment))
		}
		return h.alignedOffsetMalloc(uintptr(size), uintptr(alignment), uintptr(alignmentOffset))
	default:
		// No native aligned malloc. Never emulated by over-allocating;
		// the request is unsatisfiable unless plain malloc suffices.
		if uintptr(alignment) <= MinAlignment && alignmentOffset%alignment == 0 {
			return h.malloc(uintptr(size))
		}
		return nil
	}
}

// heapFree routes to the free primitive matching heapAlloc's choice.
// POSIX memalign blocks are plain-free compatible.
func heapFree(h *heap, ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	if h.profile == ProfileWindows {
		h.alignedFree(ptr)
		return
	}
	h.free(ptr)
}
