//go:build !noasm && amd64

package simd

import "unsafe"

//go:noescape
func copyAvx2(dst unsafe.Pointer, src unsafe.Pointer, n uintptr)

//go:noescape
func moveAvx2(dst unsafe.Pointer, src unsafe.Pointer, n uintptr)

//go:noescape
func strlenAvx2(p unsafe.Pointer) uintptr
