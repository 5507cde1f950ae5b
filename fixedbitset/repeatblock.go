package fixedbitset

import "fmt"

// RepeatBlock returns, within capacity cap, the set
//
//	block | (block << blockSize) | (block << 2*blockSize) | ... | (block << (count-1)*blockSize)
//
// i.e. count side-by-side repetitions of a blockSize-wide bit pattern.
// CellSet uses this to build its column masks (Left, Right) and its
// per-row Universe mask at construction time from a single-row pattern.
//
// blockSize must be > 0 and < LaneBits (a block always fits in a single
// lane before replication); count must be >= 0.
func RepeatBlock(cap int, block uint64, blockSize, count int) (Set, error) {
	if blockSize <= 0 || blockSize >= LaneBits {
		return Set{}, fmt.Errorf("fixedbitset: RepeatBlock blockSize %d: %w", blockSize, ErrOutOfRange)
	}
	if count < 0 {
		return Set{}, fmt.Errorf("fixedbitset: RepeatBlock count %d: %w", count, ErrOutOfRange)
	}
	acc, err := New(cap)
	if err != nil {
		return Set{}, err
	}
	unit, err := FromUint64(cap, block)
	if err != nil {
		return Set{}, err
	}
	for i := 0; i < count; i++ {
		shifted, err := unit.Lsh(i * blockSize)
		if err != nil {
			return Set{}, err
		}
		acc = acc.Union(shifted)
	}
	return acc, nil
}
