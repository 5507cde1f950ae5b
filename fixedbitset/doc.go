// Package fixedbitset implements FixedBitset<N>: a fixed-capacity set of
// integers drawn from [0, N) for N up to 256, backed by up to four 64-bit
// lanes. It is the storage layer the rest of the solver builds on — board
// positions, flood-fill frontiers, and pattern footprints are all
// FixedBitset values underneath.
//
// Set is a plain value type: copying it copies its four-lane array, there
// is no shared state, no allocation, and no destructor. The zero value is
// the empty set of capacity 0; use New, Universe, FromUint64, FromRange,
// or FromList to build one with the capacity you need.
//
// Invariant: bits at indices >= N are always zero, except immediately
// after one of the "fast" operations (FastLsh, FastNot), whose result must
// be passed through Clean before it is compared, right-shifted, or read
// at any index >= N (chains of shifts and complements, as in
// CellSet.Neighbors, would otherwise re-mask after every step for no
// benefit).
//
// Package layout is one file per operation category: types.go for the
// struct and Clean, errors.go for the sentinel errors, construct.go,
// observe.go, algebra.go, shifts.go, mutate.go, enumerate.go,
// repeatblock.go, fast.go.
package fixedbitset

// MaxLanes is the number of 64-bit lanes backing every Set, regardless of
// its declared capacity. Unused high lanes are always zero.
const MaxLanes = 4

// LaneBits is the width of one storage lane.
const LaneBits = 64

// MaxBits is the largest capacity a Set can hold.
const MaxBits = MaxLanes * LaneBits
