// Package memvec provides vectorized drop-in replacements for memcpy,
// memmove and strlen.
//
// The kernels move and compare 32 bytes per vector instruction. On x86-64
// with AVX2 they are hand-written assembly; elsewhere (or with -tags noasm,
// or MEMVEC_SIMD=generic) pure Go kernels with the same block structure
// are used. Results are byte-for-byte identical either way.
//
// # Pointer API
//
// Copy, Move and StrLen take raw pointers and mirror their C counterparts:
// no validation, no allocation, undefined behaviour on bad input.
//
//	memvec.Copy(dst, src, n) // non-overlapping
//	memvec.Move(dst, src, n) // any overlap
//	n := memvec.StrLen(p)    // nil -> 0
//
// # Slice API
//
// CopyBytes, MoveBytes and StrLenBytes are memory-safe wrappers with the
// semantics of the builtin copy and a bounded NUL scan.
//
//	buf := memvec.MakeCString("hello")
//	n := memvec.StrLen(unsafe.Pointer(&buf[0])) // 5
//
// # Concurrency
//
// Every function is stateless. Calls on disjoint memory need no
// coordination.
package memvec
