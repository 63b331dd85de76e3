//go:build amd64 && !noasm

package simd

// ============================================================================
// AVX2 Kernels
// ============================================================================

func avx2Kernels() Kernels {
	return Kernels{
		ISA:    AVX2,
		Copy:   copyAvx2,
		Move:   moveAvx2,
		StrLen: strlenAvx2,
	}
}
