package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // test data only
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// FillBytes fills dst with uniform random bytes.
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) FillBytes(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = r.rand.Read(dst)
}

// FillNonZero fills dst with random bytes in [1, 255].
func (r *RNG) FillNonZero(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = byte(1 + r.rand.Intn(255))
	}
}

// FillLetters fills dst with random upper-case ASCII letters.
func (r *RNG) FillLetters(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = 'A' + byte(r.rand.Intn(26))
	}
}

// Bytes returns n uniform random bytes.
func (r *RNG) Bytes(n int) []byte {
	out := make([]byte, n)
	r.FillBytes(out)
	return out
}

// FillAlphabet fills dst with the repeating sequence 'A'..'Z'.
func FillAlphabet(dst []byte) {
	for i := range dst {
		dst[i] = 'A' + byte(i%26)
	}
}

// FillSequence fills dst with the repeating sequence 1..255, skipping zero,
// so that every byte position is distinguishable from its neighbours.
func FillSequence(dst []byte) {
	for i := range dst {
		dst[i] = byte(i%255) + 1
	}
}

// ============================================================================
// Reference implementations
// ============================================================================

// RefCopy copies min(len(dst), len(src)) bytes one at a time, lowest index
// first. It is only meaningful for non-overlapping slices.
func RefCopy(dst, src []byte) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = src[i]
	}
	return n
}

// RefMove returns a copy of buf after moving n bytes from srcOff to dstOff
// as if through a temporary buffer. buf itself is not modified.
func RefMove(buf []byte, dstOff, srcOff, n int) []byte {
	out := make([]byte, len(buf))
	RefCopy(out, buf)

	tmp := make([]byte, n)
	RefCopy(tmp, buf[srcOff:srcOff+n])
	RefCopy(out[dstOff:dstOff+n], tmp)
	return out
}

// RefStrLen returns the index of the first zero byte in b, or len(b).
func RefStrLen(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return len(b)
}
