package bitops

import (
	"fmt"
	"math/bits"
)

// deBruijn64 is the B(2,6) De Bruijn sequence used by the portable
// bit-scan fallback: multiplying an isolated bit by this constant and
// reading the top 6 bits of the product yields a perfect hash into a
// 64-entry index table.
const deBruijn64 = 0x022fdd63cc95386d

var deBruijnLowestIndex = [64]uint{
	0, 1, 2, 53, 3, 7, 54, 27,
	4, 38, 41, 8, 34, 55, 48, 28,
	62, 5, 39, 46, 44, 42, 22, 9,
	24, 35, 59, 56, 49, 18, 29, 11,
	63, 52, 6, 26, 37, 40, 33, 47,
	61, 45, 43, 21, 23, 58, 17, 10,
	51, 25, 36, 32, 60, 20, 57, 16,
	50, 31, 19, 15, 30, 14, 13, 12,
}

// LowestSet returns the index of the least-significant set bit of w.
// The result is undefined when w is 0; callers must guard with w != 0.
//
// Implementation: math/bits.TrailingZeros64, which lowers to a hardware
// count-trailing-zeros instruction on every platform the Go toolchain
// targets.
func LowestSet(w uint64) int {
	return bits.TrailingZeros64(w)
}

// lowestSetDeBruijn is the portable de Bruijn fallback for LowestSet,
// kept to document the classic bit-scan algorithm as an alternative to
// the hardware intrinsic, and to cross-check LowestSet in tests.
func lowestSetDeBruijn(w uint64) int {
	isolated := w & (-w)
	return int(deBruijnLowestIndex[(isolated*deBruijn64)>>58])
}

// HighestSet returns the index of the most-significant set bit of w.
// The result is undefined when w is 0.
//
// Implementation: 63 - math/bits.LeadingZeros64, the hardware
// count-leading-zeros path.
func HighestSet(w uint64) int {
	return 63 - bits.LeadingZeros64(w)
}

// highestSetFlood is the portable flood-fill-then-popcount fallback for
// HighestSet: OR the word down into every lower bit, then the result has
// exactly (index+1) bits set.
func highestSetFlood(w uint64) int {
	w |= w >> 1
	w |= w >> 2
	w |= w >> 4
	w |= w >> 8
	w |= w >> 16
	w |= w >> 32
	return popcountSWAR(w) - 1
}

// PopCount returns the number of set bits in w.
//
// Implementation: math/bits.OnesCount64 (hardware POPCNT where available).
func PopCount(w uint64) int {
	return bits.OnesCount64(w)
}

// popcountSWAR is the canonical constant-time SWAR fallback for PopCount,
// using the classic ones/3, ones/15·3, ones/255·15 mask ladder.
func popcountSWAR(w uint64) int {
	const m1 = 0x5555555555555555
	const m2 = 0x3333333333333333
	const m4 = 0x0f0f0f0f0f0f0f0f
	const h01 = 0x0101010101010101
	w -= (w >> 1) & m1
	w = (w & m2) + ((w >> 2) & m2)
	w = (w + (w >> 4)) & m4
	return int((w * h01) >> 56)
}

// BitRange returns a mask with bits m..n inclusive set, requiring
// 0 <= m <= n < 64. It fails with ErrOutOfRange otherwise.
func BitRange(m, n int) (uint64, error) {
	if m < 0 || n < 0 || m > n || n >= 64 {
		return 0, fmt.Errorf("bitops: range [%d,%d]: %w", m, n, ErrOutOfRange)
	}
	width := n - m + 1
	var mask uint64
	if width == 64 {
		mask = ^uint64(0)
	} else {
		mask = (uint64(1)<<uint(width) - 1) << uint(m)
	}
	return mask, nil
}
