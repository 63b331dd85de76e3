package simd

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/memvec/internal/mem"
	"github.com/hupe1980/memvec/testutil"
)

const guardByte = 0xEE

func forEachKernels(t *testing.T, fn func(t *testing.T, k Kernels)) {
	t.Helper()
	for _, k := range Available() {
		t.Run(k.ISA.String(), func(t *testing.T) {
			fn(t, k)
		})
	}
}

func ptr(b []byte, off int) unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(unsafe.SliceData(b)), off)
}

func fill(b []byte, v byte) {
	for i := range b {
		b[i] = v
	}
}

// copyLengths covers every tail length, every lane count below one
// super-block, the prefetch threshold and several super-block counts.
func copyLengths() []int {
	var out []int
	for n := 1; n <= 2*SuperBlockBytes+LaneBytes+1; n++ {
		out = append(out, n)
	}
	return append(out, 1023, 1024, 1025, 4096+17, 16384)
}

func TestCopyKernels(t *testing.T) {
	rng := testutil.NewRNG(4711)
	const slack = 64

	forEachKernels(t, func(t *testing.T, k Kernels) {
		for _, align := range [][2]int{{0, 0}, {1, 0}, {0, 7}, {5, 31}, {31, 1}} {
			dstOff, srcOff := align[0], align[1]
			for _, n := range copyLengths() {
				src := mem.AllocAligned(n + slack)
				dst := mem.AllocAligned(n + 2*slack)
				rng.FillBytes(src)
				fill(dst, guardByte)

				k.Copy(ptr(dst, dstOff), ptr(src, srcOff), uintptr(n))

				require.Equal(t, src[srcOff:srcOff+n], dst[dstOff:dstOff+n], "n=%d dstOff=%d srcOff=%d", n, dstOff, srcOff)
				for i, b := range dst[:dstOff] {
					require.Equal(t, byte(guardByte), b, "leading guard %d clobbered (n=%d)", i, n)
				}
				for i, b := range dst[dstOff+n:] {
					require.Equal(t, byte(guardByte), b, "trailing guard %d clobbered (n=%d)", i, n)
				}
			}
		}
	})
}

func TestCopyBlockBoundaries(t *testing.T) {
	// Exact multiples of the lane and super-block sizes exercise the paths
	// with zero tail bytes and zero leftover lanes.
	lengths := []int{LaneBytes, 2 * LaneBytes, 7 * LaneBytes, SuperBlockBytes, 2 * SuperBlockBytes, 3*SuperBlockBytes + LaneBytes}

	forEachKernels(t, func(t *testing.T, k Kernels) {
		for _, n := range lengths {
			src := make([]byte, n)
			dst := make([]byte, n+1)
			testutil.FillSequence(src)
			dst[n] = guardByte

			k.Copy(ptr(dst, 0), ptr(src, 0), uintptr(n))

			assert.Equal(t, src, dst[:n], "n=%d", n)
			assert.Equal(t, byte(guardByte), dst[n], "n=%d", n)
		}
	})
}

func TestCopyAlphabetScenario(t *testing.T) {
	forEachKernels(t, func(t *testing.T, k Kernels) {
		src := make([]byte, 100)
		testutil.FillAlphabet(src)
		dst := make([]byte, 200)

		k.Copy(ptr(dst, 0), ptr(src, 0), 100)

		assert.Equal(t, src, dst[:100])
		assert.Equal(t, make([]byte, 100), dst[100:])
	})
}

func moveShifts() []int {
	var out []int
	for d := -40; d <= 40; d++ {
		out = append(out, d)
	}
	return append(out, -257, -256, -255, -65, -64, -63, 63, 64, 65, 255, 256, 257)
}

func moveLengths() []int {
	var out []int
	for n := 1; n <= 2*LaneBytes+3; n++ {
		out = append(out, n)
	}
	return append(out, 95, 96, 97, 255, 256, 257, 511, 600, 1024)
}

func TestMoveKernels(t *testing.T) {
	const base = 300

	forEachKernels(t, func(t *testing.T, k Kernels) {
		for _, n := range moveLengths() {
			for _, shift := range moveShifts() {
				if shift == 0 {
					continue
				}
				buf := make([]byte, 2*base+n)
				testutil.FillSequence(buf)
				srcOff, dstOff := base, base+shift
				want := testutil.RefMove(buf, dstOff, srcOff, n)

				k.Move(ptr(buf, dstOff), ptr(buf, srcOff), uintptr(n))

				require.Equal(t, want, buf, "n=%d shift=%d", n, shift)
			}
		}
	})
}

func TestMoveDisjoint(t *testing.T) {
	rng := testutil.NewRNG(7)

	forEachKernels(t, func(t *testing.T, k Kernels) {
		for _, n := range []int{1, 31, 32, 33, 256, 1000} {
			buf := rng.Bytes(3 * n)
			// Both directions: dst above and below src, spans disjoint.
			for _, offs := range [][2]int{{2 * n, 0}, {0, 2 * n}} {
				dstOff, srcOff := offs[0], offs[1]
				want := testutil.RefMove(buf, dstOff, srcOff, n)

				k.Move(ptr(buf, dstOff), ptr(buf, srcOff), uintptr(n))

				require.Equal(t, want, buf, "n=%d dst=%d src=%d", n, dstOff, srcOff)
			}
		}
	})
}

func TestMoveForwardOverlapScenario(t *testing.T) {
	forEachKernels(t, func(t *testing.T, k Kernels) {
		buf := make([]byte, 64)
		testutil.FillAlphabet(buf)
		want := testutil.RefMove(buf, 10, 0, 50)

		naive := append([]byte(nil), buf...)
		for i := 0; i < 50; i++ {
			naive[10+i] = naive[i]
		}
		require.NotEqual(t, want, naive, "scenario must distinguish a naive forward copy")

		k.Move(ptr(buf, 10), ptr(buf, 0), 50)

		assert.Equal(t, want, buf)
	})
}

func TestWrappersNoOp(t *testing.T) {
	buf := []byte("memvec")
	p := ptr(buf, 0)

	Copy(p, p, uintptr(len(buf)))
	Move(p, p, uintptr(len(buf)))
	Copy(ptr(buf, 1), p, 0)
	Move(ptr(buf, 1), p, 0)

	assert.Equal(t, "memvec", string(buf))
	assert.Equal(t, uintptr(0), StrLen(nil))
}

func TestWrappersDispatch(t *testing.T) {
	src := []byte("hello, vector lanes and super-blocks\x00")
	dst := make([]byte, len(src))

	Copy(ptr(dst, 0), ptr(src, 0), uintptr(len(src)))
	assert.Equal(t, src, dst)

	Move(ptr(dst, 1), ptr(dst, 0), uintptr(len(dst)-1))
	assert.Equal(t, "hhello, vector lanes and super-blocks", string(dst))

	assert.Equal(t, uintptr(len(src)-1), StrLen(ptr(src, 0)))
}

func TestStrLenKernels(t *testing.T) {
	rng := testutil.NewRNG(4711)
	const maxLen = 3*LaneBytes + 5

	forEachKernels(t, func(t *testing.T, k Kernels) {
		for mis := 0; mis < LaneBytes; mis++ {
			for want := 0; want <= maxLen; want++ {
				buf := mem.AllocPadded(mis+want+1+LaneBytes, LaneBytes)
				// Zeros before the start must be masked out; bytes after the
				// terminator are arbitrary.
				rng.FillBytes(buf[mis+want+1:])
				rng.FillNonZero(buf[mis : mis+want])
				ref := testutil.RefStrLen(buf[mis:])
				require.Equal(t, want, ref)

				got := k.StrLen(ptr(buf, mis))

				require.Equal(t, uintptr(ref), got, "misalignment=%d", mis)
			}
		}
	})
}

func TestStrLenMisalignedScenario(t *testing.T) {
	forEachKernels(t, func(t *testing.T, k Kernels) {
		buf := mem.AllocPadded(5+65, LaneBytes)
		testutil.FillAlphabet(buf[5 : 5+64])
		buf[5+64] = 0

		assert.Equal(t, uintptr(64), k.StrLen(ptr(buf, 5)))
	})
}

func TestStrLenLong(t *testing.T) {
	rng := testutil.NewRNG(1)

	forEachKernels(t, func(t *testing.T, k Kernels) {
		for _, n := range []int{1000, 4095, 4096, 65537} {
			buf := mem.AllocPadded(n+1, LaneBytes)
			rng.FillLetters(buf[:n])

			assert.Equal(t, uintptr(testutil.RefStrLen(buf)), k.StrLen(ptr(buf, 0)), "n=%d", n)
		}
	})
}

func BenchmarkCopy(b *testing.B) {
	for _, k := range Available() {
		for _, size := range []int{64, 256, 1024, 4096, 65536, 1 << 20} {
			b.Run(fmt.Sprintf("%s/size=%d", k.ISA, size), func(b *testing.B) {
				src := mem.AllocAligned(size)
				dst := mem.AllocAligned(size)
				b.SetBytes(int64(size))
				b.ResetTimer()
				for b.Loop() {
					k.Copy(ptr(dst, 0), ptr(src, 0), uintptr(size))
				}
			})
		}
	}
}

func BenchmarkMove(b *testing.B) {
	for _, k := range Available() {
		for _, size := range []int{64, 1024, 65536} {
			b.Run(fmt.Sprintf("%s/size=%d", k.ISA, size), func(b *testing.B) {
				buf := mem.AllocAligned(size + 64)
				b.SetBytes(int64(size))
				b.ResetTimer()
				for b.Loop() {
					k.Move(ptr(buf, 10), ptr(buf, 0), uintptr(size))
				}
			})
		}
	}
}

func BenchmarkStrLen(b *testing.B) {
	rng := testutil.NewRNG(1)
	for _, k := range Available() {
		for _, size := range []int{64, 1024, 65536} {
			b.Run(fmt.Sprintf("%s/size=%d", k.ISA, size), func(b *testing.B) {
				buf := mem.AllocPadded(size+1, LaneBytes)
				rng.FillLetters(buf[:size])
				b.SetBytes(int64(size))
				b.ResetTimer()
				for b.Loop() {
					_ = k.StrLen(ptr(buf, 0))
				}
			})
		}
	}
}
