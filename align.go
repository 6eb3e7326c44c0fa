package heapalloc

import (
	"unsafe"
)

// MinAlignment is the alignment the platform heap guarantees for every
// plain malloc block: twice the pointer size, per the C runtime rule.
const MinAlignment = 2 * unsafe.Sizeof(uintptr(0))

func isPow2(x uint) bool {
	return x != 0 && x&(x-1) == 0
}

// IsAligned reports whether ptr satisfies alignment at the given byte
// offset into the block.
func IsAligned(ptr unsafe.Pointer, alignment, offset uint) bool {
	if alignment == 0 {
		return true
	}
	return (uintptr(ptr)+uintptr(offset))%uintptr(alignment) == 0
}
