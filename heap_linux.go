//go:build linux

package heapalloc

import (
	"reflect"
	"unsafe"

	"github.com/ebitengine/purego"
)

type libcFFI struct {
	Malloc   func(size uintptr) unsafe.Pointer            `ffi:"malloc"`
	Free     func(ptr unsafe.Pointer)                     `ffi:"free"`
	Memalign func(alignment, size uintptr) unsafe.Pointer `ffi:"memalign"`
}

func loadLibc(lib uintptr) *libcFFI {
	var ffi libcFFI
	t := reflect.TypeOf(&ffi).Elem()
	v := reflect.ValueOf(&ffi).Elem()
	for i := range t.NumField() {
		field := t.Field(i)
		if field.Type.Kind() != reflect.Func {
			continue
		}
		fname := field.Tag.Get("ffi")
		if fname == "" {
			continue
		}
		fptr := v.Field(i).Addr().Interface()
		purego.RegisterLibFunc(fptr, lib, fname)
	}
	return &ffi
}

// openHostHeap binds the C library heap. memalign is preferred over
// posix_memalign because its blocks share plain free and its symbol is
// more consistently exported.
func openHostHeap() *heap {
	lib, err := purego.Dlopen("libc.so.6", purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		panic("heapalloc: dlopen libc: " + err.Error())
	}
	ffi := loadLibc(lib)
	return &heap{
		profile: ProfilePOSIX,
		malloc:  ffi.Malloc,
		free:    ffi.Free,
		alignedMalloc: func(size, alignment uintptr) unsafe.Pointer {
			return ffi.Memalign(alignment, size)
		},
	}
}
