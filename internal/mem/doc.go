// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides 64-byte aligned allocation (cache line, and a multiple of the
// 32-byte vector lane).
//
// # Padded Allocation
//
// AllocPadded rounds capacity up to a whole number of lanes so that
// aligned block reads from any byte of the slice stay inside the
// allocation.
package mem
