package simd

import "unsafe"

const (
	// LaneBytes is the width of one 256-bit vector lane.
	LaneBytes = 32

	// UnrollLanes is the number of lanes per unrolled copy iteration.
	UnrollLanes = 8

	// SuperBlockBytes is the span covered by one unrolled copy iteration.
	SuperBlockBytes = LaneBytes * UnrollLanes

	// PrefetchThreshold is the largest copy for which Copy issues
	// software prefetch hints.
	PrefetchThreshold = SuperBlockBytes
)

// Kernels bundles one implementation of every primitive.
// The kernels do not handle the n == 0, dst == src and nil shortcuts;
// callers check those first.
type Kernels struct {
	ISA    ISA
	Copy   func(dst, src unsafe.Pointer, n uintptr)
	Move   func(dst, src unsafe.Pointer, n uintptr)
	StrLen func(p unsafe.Pointer) uintptr
}

// Kernel function pointers - set once at init, zero runtime overhead.
// Generic implementations are the default; setKernels overrides them with
// the SIMD versions of the active ISA.
var (
	kernelCopy   = copyGeneric
	kernelMove   = moveGeneric
	kernelStrLen = strlenGeneric
)

func genericKernels() Kernels {
	return Kernels{
		ISA:    Generic,
		Copy:   copyGeneric,
		Move:   moveGeneric,
		StrLen: strlenGeneric,
	}
}

func setKernels(isa ISA) {
	k := genericKernels()
	if isa == AVX2 {
		k = avx2Kernels()
	}
	kernelCopy = k.Copy
	kernelMove = k.Move
	kernelStrLen = k.StrLen
}

// Available returns every kernel set usable on this CPU and build,
// the generic set first.
func Available() []Kernels {
	out := []Kernels{genericKernels()}
	if isISAAvailable(AVX2) {
		out = append(out, avx2Kernels())
	}
	return out
}

// Active returns the kernel set selected at init.
func Active() Kernels {
	return Kernels{
		ISA:    activeISA,
		Copy:   kernelCopy,
		Move:   kernelMove,
		StrLen: kernelStrLen,
	}
}

// ============================================================================
// Public API - Zero-overhead dispatch through function pointers
// ============================================================================

// Copy copies n bytes from src to dst. The spans must not overlap.
//
// SAFETY: Caller MUST ensure both spans are valid for n bytes.
func Copy(dst, src unsafe.Pointer, n uintptr) {
	if n == 0 || dst == src {
		return
	}
	kernelCopy(dst, src, n)
}

// Move copies n bytes from src to dst. The spans may overlap.
//
// SAFETY: Caller MUST ensure both spans are valid for n bytes.
func Move(dst, src unsafe.Pointer, n uintptr) {
	if n == 0 || dst == src {
		return
	}
	kernelMove(dst, src, n)
}

// StrLen returns the number of bytes before the first zero byte at p.
// A nil p yields 0.
//
// SAFETY: Caller MUST ensure a zero byte exists at or after p.
func StrLen(p unsafe.Pointer) uintptr {
	if p == nil {
		return 0
	}
	return kernelStrLen(p)
}
