package memvec

import (
	"bytes"
	"unsafe"

	"github.com/hupe1980/memvec/internal/mem"
	"github.com/hupe1980/memvec/internal/simd"
)

// LaneBytes is the width of one vector lane. Buffers from MakeAligned and
// MakeCString have capacity padded to a multiple of it.
const LaneBytes = simd.LaneBytes

// Copy copies n bytes from src to dst and returns dst.
//
// The spans must not overlap; use Move when they might. Neither pointer
// needs any alignment. A zero n or dst == src is a no-op.
//
// SAFETY: Nothing is validated. Both spans MUST be valid for n bytes.
func Copy(dst, src unsafe.Pointer, n uintptr) unsafe.Pointer {
	simd.Copy(dst, src, n)
	return dst
}

// Move copies n bytes from src to dst and returns dst. The result is as if
// src were first copied to a temporary buffer, for any overlap.
//
// SAFETY: Nothing is validated. Both spans MUST be valid for n bytes.
func Move(dst, src unsafe.Pointer, n uintptr) unsafe.Pointer {
	simd.Move(dst, src, n)
	return dst
}

// StrLen returns the number of bytes before the first zero byte at s.
// Unlike C strlen, a nil s returns 0.
//
// StrLen reads whole aligned 32-byte blocks, including up to 31 bytes
// before s and after the terminator, but never across a page boundary.
//
// SAFETY: A zero byte MUST exist at or after s within the same allocation.
func StrLen(s unsafe.Pointer) uintptr {
	return simd.StrLen(s)
}

// CopyBytes copies min(len(dst), len(src)) bytes from src to dst and returns
// the count, like the builtin copy. Overlapping slices are handled with Move.
func CopyBytes(dst, src []byte) int {
	n := min(len(dst), len(src))
	if n == 0 {
		return 0
	}
	d, s := unsafe.Pointer(unsafe.SliceData(dst)), unsafe.Pointer(unsafe.SliceData(src))
	if overlaps(d, s, uintptr(n)) {
		simd.Move(d, s, uintptr(n))
	} else {
		simd.Copy(d, s, uintptr(n))
	}
	return n
}

// MoveBytes copies min(len(dst), len(src)) bytes from src to dst with Move
// and returns the count.
func MoveBytes(dst, src []byte) int {
	n := min(len(dst), len(src))
	if n == 0 {
		return 0
	}
	simd.Move(unsafe.Pointer(unsafe.SliceData(dst)), unsafe.Pointer(unsafe.SliceData(src)), uintptr(n))
	return n
}

// StrLenBytes returns the index of the first zero byte in b, or len(b) if
// there is none. It never reads outside b.
func StrLenBytes(b []byte) int {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return i
	}
	return len(b)
}

// MakeAligned returns a zeroed buffer of length n that starts on a 64-byte
// boundary and whose capacity is padded to a whole number of lanes.
func MakeAligned(n int) []byte {
	return mem.AllocPadded(n, LaneBytes)
}

// MakeCString returns s followed by a zero byte in a buffer from
// MakeAligned, so StrLen on it stays inside the allocation. The returned
// slice includes the terminator.
func MakeCString(s string) []byte {
	buf := MakeAligned(len(s) + 1)
	if len(s) > 0 {
		simd.Copy(unsafe.Pointer(&buf[0]), unsafe.Pointer(unsafe.StringData(s)), uintptr(len(s)))
	}
	return buf
}

// GoString returns a copy of the zero-terminated bytes at s as a Go string.
// A nil s yields "".
func GoString(s unsafe.Pointer) string {
	n := StrLen(s)
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(s), n))
}

// ActiveISA returns the name of the kernel set in use ("avx2" or "generic").
func ActiveISA() string {
	return simd.ActiveISA().String()
}

// HasAVX2 reports whether the CPU supports AVX2.
func HasAVX2() bool {
	return simd.HasAVX2()
}

func overlaps(a, b unsafe.Pointer, n uintptr) bool {
	ua, ub := uintptr(a), uintptr(b)
	return ua < ub+n && ub < ua+n
}
