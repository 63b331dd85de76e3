package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of every buffer returned by this package.
const Alignment = 64

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}
	return alloc(size, size)
}

// AllocPadded allocates a 64-byte aligned byte slice of the given length whose
// capacity is rounded up to a multiple of pad. It returns nil for
// non-positive sizes and panics if pad is not a positive power of two.
func AllocPadded(size, pad int) []byte {
	if pad <= 0 || pad&(pad-1) != 0 {
		panic("mem: pad must be a positive power of two")
	}
	if size <= 0 {
		return nil
	}
	return alloc(size, RoundUp(size, pad))
}

func alloc(size, capacity int) []byte {
	// We need enough space to shift the start pointer up to Alignment-1 bytes
	buf := make([]byte, capacity+Alignment)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	offset := int((Alignment - (uintptr(ptr) & (Alignment - 1))) & (Alignment - 1))

	return buf[offset : offset+size : offset+capacity]
}

// RoundUp returns n rounded up to a multiple of align, which must be a
// power of two.
func RoundUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// IsAligned reports whether p is a multiple of align, which must be a power
// of two.
func IsAligned(p unsafe.Pointer, align uintptr) bool {
	return uintptr(p)&(align-1) == 0
}
