package mem

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocAligned(t *testing.T) {
	sizes := []int{1, 10, 31, 32, 33, 63, 64, 65, 100, 1024}

	for _, size := range sizes {
		buf := AllocAligned(size)
		assert.Len(t, buf, size)
		assert.Equal(t, size, cap(buf))

		ptr := unsafe.Pointer(&buf[0])
		assert.True(t, IsAligned(ptr, Alignment), "Address %p should be aligned to %d for size %d", ptr, Alignment, size)
	}

	assert.Nil(t, AllocAligned(0))
	assert.Nil(t, AllocAligned(-1))
}

func TestAllocAlignedZeroed(t *testing.T) {
	buf := AllocAligned(257)
	for i, b := range buf {
		require.Zero(t, b, "byte %d", i)
	}
}

func TestAllocPadded(t *testing.T) {
	tests := []struct {
		size, pad int
		wantCap   int
	}{
		{1, 32, 32},
		{31, 32, 32},
		{32, 32, 32},
		{33, 32, 64},
		{65, 32, 96},
		{100, 64, 128},
		{7, 8, 8},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("size=%d/pad=%d", tc.size, tc.pad), func(t *testing.T) {
			buf := AllocPadded(tc.size, tc.pad)
			assert.Len(t, buf, tc.size)
			assert.Equal(t, tc.wantCap, cap(buf))
			assert.True(t, IsAligned(unsafe.Pointer(&buf[0]), Alignment))
		})
	}

	assert.Nil(t, AllocPadded(0, 32))
	assert.Panics(t, func() { AllocPadded(10, 0) })
	assert.Panics(t, func() { AllocPadded(10, 24) })
}

func TestRoundUp(t *testing.T) {
	assert.Equal(t, 0, RoundUp(0, 32))
	assert.Equal(t, 32, RoundUp(1, 32))
	assert.Equal(t, 32, RoundUp(32, 32))
	assert.Equal(t, 64, RoundUp(33, 32))
	assert.Equal(t, 256, RoundUp(250, 256))
}

func TestIsAligned(t *testing.T) {
	buf := AllocAligned(128)
	base := unsafe.Pointer(&buf[0])

	assert.True(t, IsAligned(base, 32))
	assert.False(t, IsAligned(unsafe.Add(base, 5), 32))
	assert.True(t, IsAligned(unsafe.Add(base, 32), 32))
	assert.False(t, IsAligned(unsafe.Add(base, 32), 64))
}

func BenchmarkAllocAligned(b *testing.B) {
	sizes := []int{64, 256, 1024, 4096}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = AllocAligned(size)
			}
		})
	}
}

func BenchmarkAllocPadded(b *testing.B) {
	sizes := []int{65, 257, 1025}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = AllocPadded(size, 32)
			}
		})
	}
}
