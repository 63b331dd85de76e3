// Package simd provides the vectorized memory kernels behind memvec.
//
// # Supported Platforms
//
//   - x86-64: AVX2 (256-bit lanes, hand-written assembly)
//   - everything else: pure Go kernels over 4x uint64 lanes
//
// CPU features are detected once at init and the kernel function pointers
// are set accordingly. Set MEMVEC_SIMD=generic to force the Go kernels at
// runtime, or build with -tags noasm to leave the assembly out entirely.
//
// # Operations
//
//   - Copy: forward copy in 256-byte unrolled super-blocks, prefetching
//     small copies, then 32-byte lanes, then single bytes
//   - Move: overlap-safe copy choosing direction from the pointer order
//   - StrLen: NUL scan using compare-and-mask over aligned 32-byte blocks
//
// The kernels do no validation. Zero lengths, identical pointers and nil
// strings are handled by the exported wrappers.
package simd
