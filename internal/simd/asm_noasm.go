//go:build !amd64 || noasm

package simd

const asmEnabled = false

func avx2Kernels() Kernels { return genericKernels() }
