package fixedbitset

import (
	"fmt"

	"github.com/katalvlaran/hexlath/bitops"
)

// Any reports whether the set has at least one member.
func (s Set) Any() bool {
	for _, w := range s.lanes {
		if w != 0 {
			return true
		}
	}
	return false
}

// None reports whether the set has no members.
func (s Set) None() bool {
	return !s.Any()
}

// All reports whether the set contains every index in [0, N).
func (s Set) All() bool {
	for i := 0; i < MaxLanes; i++ {
		if s.lanes[i] != laneValidMask(s.n, i) {
			return false
		}
	}
	return true
}

// Count returns the number of members.
func (s Set) Count() int {
	total := 0
	for _, w := range s.lanes {
		total += bitops.PopCount(w)
	}
	return total
}

// Test reports whether i is a member. Indices outside [0, N) are never
// members and report false rather than erroring, matching the read-only,
// total nature of observation queries.
func (s Set) Test(i int) bool {
	if i < 0 || i >= s.n {
		return false
	}
	lane, bit := i/LaneBits, uint(i%LaneBits)
	return s.lanes[lane]&(uint64(1)<<bit) != 0
}

// Min returns the smallest member. It fails with ErrEmptySet if the set
// has no members.
func (s Set) Min() (int, error) {
	for lane := 0; lane < MaxLanes; lane++ {
		if s.lanes[lane] != 0 {
			return lane*LaneBits + bitops.LowestSet(s.lanes[lane]), nil
		}
	}
	return 0, fmt.Errorf("fixedbitset: Min: %w", ErrEmptySet)
}

// Max returns the largest member. It fails with ErrEmptySet if the set
// has no members.
func (s Set) Max() (int, error) {
	for lane := MaxLanes - 1; lane >= 0; lane-- {
		if s.lanes[lane] != 0 {
			return lane*LaneBits + bitops.HighestSet(s.lanes[lane]), nil
		}
	}
	return 0, fmt.Errorf("fixedbitset: Max: %w", ErrEmptySet)
}

// ToUint64 returns the set's membership packed into a uint64. It fails
// with ErrOverflow if any member index is 64 or above.
func (s Set) ToUint64() (uint64, error) {
	for lane := 1; lane < MaxLanes; lane++ {
		if s.lanes[lane] != 0 {
			return 0, fmt.Errorf("fixedbitset: ToUint64: %w", ErrOverflow)
		}
	}
	return s.lanes[0], nil
}

// Equal reports whether s and other contain the same members. Capacity
// is not itself compared: two sets of differing nominal N but identical
// membership (after each is cleaned to its own capacity) are equal.
func (s Set) Equal(other Set) bool {
	a, b := s.Clean(), other.Clean()
	return a.lanes == b.lanes
}
