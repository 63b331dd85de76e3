package simd

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// Pure Go kernels. A lane is held in four machine words; the block
// structure matches the assembly kernels so both produce the same access
// pattern, minus the prefetch hints which have no portable form.

const (
	wordBytes = 8

	lo7      = 0x0101010101010101
	hi7      = 0x8080808080808080
	wordMask = wordBytes - 1
)

// lane is a 32-byte vector held in four machine words.
type lane [LaneBytes / wordBytes]uint64

func loadLane(b []byte) lane {
	_ = b[LaneBytes-1] // bounds check hint to compiler
	return lane{
		binary.LittleEndian.Uint64(b[0:]),
		binary.LittleEndian.Uint64(b[8:]),
		binary.LittleEndian.Uint64(b[16:]),
		binary.LittleEndian.Uint64(b[24:]),
	}
}

func storeLane(b []byte, v lane) {
	_ = b[LaneBytes-1]
	binary.LittleEndian.PutUint64(b[0:], v[0])
	binary.LittleEndian.PutUint64(b[8:], v[1])
	binary.LittleEndian.PutUint64(b[16:], v[2])
	binary.LittleEndian.PutUint64(b[24:], v[3])
}

func spans(dst, src unsafe.Pointer, n uintptr) ([]byte, []byte) {
	return unsafe.Slice((*byte)(dst), n), unsafe.Slice((*byte)(src), n)
}

func copyGeneric(dst, src unsafe.Pointer, n uintptr) {
	d, s := spans(dst, src, n)
	nLanes := n / LaneBytes
	off := uintptr(0)

	for i := nLanes / UnrollLanes; i > 0; i-- {
		v0 := loadLane(s[off:])
		v1 := loadLane(s[off+1*LaneBytes:])
		v2 := loadLane(s[off+2*LaneBytes:])
		v3 := loadLane(s[off+3*LaneBytes:])
		v4 := loadLane(s[off+4*LaneBytes:])
		v5 := loadLane(s[off+5*LaneBytes:])
		v6 := loadLane(s[off+6*LaneBytes:])
		v7 := loadLane(s[off+7*LaneBytes:])
		storeLane(d[off:], v0)
		storeLane(d[off+1*LaneBytes:], v1)
		storeLane(d[off+2*LaneBytes:], v2)
		storeLane(d[off+3*LaneBytes:], v3)
		storeLane(d[off+4*LaneBytes:], v4)
		storeLane(d[off+5*LaneBytes:], v5)
		storeLane(d[off+6*LaneBytes:], v6)
		storeLane(d[off+7*LaneBytes:], v7)
		off += SuperBlockBytes
	}

	for i := nLanes % UnrollLanes; i > 0; i-- {
		storeLane(d[off:], loadLane(s[off:]))
		off += LaneBytes
	}

	for ; off < n; off++ {
		d[off] = s[off]
	}
}

func moveGeneric(dst, src unsafe.Pointer, n uintptr) {
	d, s := spans(dst, src, n)
	nLanes := n / LaneBytes
	tail := n % LaneBytes

	if uintptr(dst) < uintptr(src) {
		off := uintptr(0)
		for i := nLanes; i > 0; i-- {
			storeLane(d[off:], loadLane(s[off:]))
			off += LaneBytes
		}
		for ; off < n; off++ {
			d[off] = s[off]
		}
		return
	}

	// dst above src: highest addresses first so every source byte is read
	// before the store that could clobber it.
	off := n
	for i := tail; i > 0; i-- {
		off--
		d[off] = s[off]
	}
	for i := nLanes; i > 0; i-- {
		off -= LaneBytes
		storeLane(d[off:], loadLane(s[off:]))
	}
}

// zeroBytes returns a word with the high bit set in the lowest byte of w
// that is zero. Bytes above the first zero may also be flagged, so only the
// lowest set bit is meaningful.
func zeroBytes(w uint64) uint64 {
	return (w - lo7) &^ w & hi7
}

func strlenGeneric(p unsafe.Pointer) uintptr {
	var n uintptr

	// Leading bytes up to word alignment. Word loads past this point never
	// straddle an allocation boundary.
	for (uintptr(p)+n)&wordMask != 0 {
		if *(*byte)(unsafe.Add(p, n)) == 0 {
			return n
		}
		n++
	}

	for {
		w := binary.LittleEndian.Uint64(unsafe.Slice((*byte)(unsafe.Add(p, n)), wordBytes))
		if z := zeroBytes(w); z != 0 {
			return n + uintptr(bits.TrailingZeros64(z)/8)
		}
		n += wordBytes
	}
}
