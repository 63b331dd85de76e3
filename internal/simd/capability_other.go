//go:build !amd64

package simd

func init() {
	initCapabilities()
	setKernels(activeISA)
}
