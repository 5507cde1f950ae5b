package cellset

import (
	"sync"

	"github.com/katalvlaran/hexlath/fixedbitset"
)

// Set is a FixedBitset<S·S> specialized with Hex board geometry.
type Set struct {
	bits fixedbitset.Set
	size int
}

// Size returns the board size S this set was built for.
func (s Set) Size() int {
	return s.size
}

// Cap returns the set's capacity, S·S.
func (s Set) Cap() int {
	return s.bits.Cap()
}

// Bits returns the underlying FixedBitset storage, for callers that need
// the lower-level algebra directly (e.g. pattern cost bookkeeping that
// mixes cell sets from different sources but the same size).
func (s Set) Bits() fixedbitset.Set {
	return s.bits
}

func wrap(size int, bits fixedbitset.Set) Set {
	return Set{bits: bits, size: size}
}

// geometry holds the precomputed edge masks for one board size.
type geometry struct {
	top, bottom, left, right, universe fixedbitset.Set
}

var (
	geometryMu    sync.Mutex
	geometryCache = map[int]geometry{}
)

// geometryFor returns (computing and caching on first use) the edge masks
// for board size S. The guard is an ordinary mutex-protected map rather
// than per-entry sync.Once, since computing a size's geometry is cheap
// (a handful of RepeatBlock calls) and sizes are drawn from a small,
// bounded [1,13] range — a map lookup is already effectively O(1) lazy
// init here.
func geometryFor(size int) geometry {
	geometryMu.Lock()
	defer geometryMu.Unlock()
	if g, ok := geometryCache[size]; ok {
		return g
	}
	g := computeGeometry(size)
	geometryCache[size] = g
	return g
}

func computeGeometry(size int) geometry {
	n := size * size

	top, err := fixedbitset.FromRange(n, 0, size)
	mustNoErr(err)

	bottom, err := top.Lsh(size * (size - 1))
	mustNoErr(err)

	left, err := fixedbitset.RepeatBlock(n, 1, size, size)
	mustNoErr(err)

	var rowHighBit uint64
	if size > 0 {
		rowHighBit = uint64(1) << uint(size-1)
	}
	right, err := fixedbitset.RepeatBlock(n, rowHighBit, size, size)
	mustNoErr(err)

	var rowFull uint64
	if size >= 64 {
		rowFull = ^uint64(0)
	} else {
		rowFull = uint64(1)<<uint(size) - 1
	}
	universe, err := fixedbitset.RepeatBlock(n, rowFull, size, size)
	mustNoErr(err)

	return geometry{top: top, bottom: bottom, left: left, right: right, universe: universe}
}

func mustNoErr(err error) {
	if err != nil {
		// geometryFor is only ever called with sizes already validated by
		// the constructors in construct.go against [MinSize,MaxSize], so every RepeatBlock/FromRange
		// call above is constructed from in-range arguments; a failure here
		// would mean validateSize itself is broken.
		panic(err)
	}
}
