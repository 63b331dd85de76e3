// Package testutil provides testing utilities for memvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded byte generators and trusted byte-at-a-time reference
// implementations of the memory primitives.
//
// # Random Buffers
//
//	rng := testutil.NewRNG(seed)
//	buf := make([]byte, 4096)
//	rng.FillBytes(buf)   // uniform random bytes
//	rng.FillLetters(buf) // 'A'..'Z', never zero
//
// # References
//
//	testutil.RefCopy(dst, src)
//	want := testutil.RefMove(buf, dstOff, srcOff, n)
//	n := testutil.RefStrLen(buf)
package testutil
