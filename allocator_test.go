package heapalloc_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/not6/heapalloc"
)

func TestAllocFree(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	a := heapalloc.NewMallocAllocator()
	p := a.Alloc(64, 0)
	assert.NotNil(p)
	assert.True(heapalloc.IsAligned(p, uint(heapalloc.MinAlignment), 0))

	// The block must be writable over its whole size.
	b := unsafe.Slice((*byte)(p), 64)
	for i := range b {
		b[i] = byte(i)
	}
	assert.EqualValues(63, b[63])

	a.Free(p, 64)
}

func TestAllocAligned(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	if heapalloc.HostProfile() == heapalloc.ProfileNone {
		t.Skipf("host heap has no aligned malloc")
	}

	a := heapalloc.NewMallocAllocator()
	p := a.AllocAligned(128, 64, 0, 0)
	assert.NotNil(p)
	assert.True(heapalloc.IsAligned(p, 64, 0))
	a.Free(p, 128)

	// Offset at a multiple of the alignment holds by construction.
	p = a.AllocAligned(128, 64, 192, 0)
	assert.NotNil(p)
	assert.True(heapalloc.IsAligned(p, 64, 192))
	a.Free(p, 128)
}

func TestAllocAlignedUnsatisfiable(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	if heapalloc.HostProfile() != heapalloc.ProfileNone {
		t.Skipf("host heap profile is %s", heapalloc.HostProfile())
	}

	a := heapalloc.NewMallocAllocator()
	assert.Nil(a.AllocAligned(128, 4096, 0, 0))
}

func TestAllocAlignedRejectsNonPow2(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	a := heapalloc.NewMallocAllocator()
	assert.Nil(a.AllocAligned(128, 3, 0, 0))
}

func TestFreeNil(t *testing.T) {
	t.Parallel()

	a := heapalloc.NewMallocAllocator()
	a.Free(nil, 0)
}

func TestEquality(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	a := heapalloc.NewMallocAllocator()
	b := heapalloc.NewMallocAllocatorNamed("pool_a")

	assert.True(a.Equal(b))
	assert.True(b.Equal(a))
	assert.True(a.Equal(a))
	assert.False(a.Equal(nil))
}

func TestName(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	a := heapalloc.NewMallocAllocator()
	assert.Equal(heapalloc.DefaultName, a.Name())

	b := heapalloc.NewMallocAllocatorNamed("pool_a")
	assert.Equal("pool_a", b.Name())

	b.SetName("pool_b")
	assert.Equal("pool_b", b.Name())
	assert.True(a.Equal(b))
}

func TestZeroValueUsable(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	var a heapalloc.MallocAllocator
	p := a.Alloc(16, 0)
	assert.NotNil(p)
	a.Free(p, 16)
	assert.Equal(heapalloc.DefaultName, a.Name())
}
