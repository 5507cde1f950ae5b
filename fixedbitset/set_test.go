package fixedbitset

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// refBits is a reference boolean-array bitset used to cross-check Set
// against an obviously-correct (if slow) implementation.
type refBits struct {
	n    int
	bits []bool
}

func newRef(n int) refBits {
	return refBits{n: n, bits: make([]bool, n)}
}

func (r refBits) toSet() Set {
	var idx []int
	for i, b := range r.bits {
		if b {
			idx = append(idx, i)
		}
	}
	s, err := FromList(r.n, idx)
	if err != nil {
		panic(err)
	}
	return s
}

func (r refBits) lsh(k int) refBits {
	out := newRef(r.n)
	for i := 0; i < r.n; i++ {
		src := i - k
		if src >= 0 && src < r.n {
			out.bits[i] = r.bits[src]
		}
	}
	return out
}

func (r refBits) rsh(k int) refBits {
	out := newRef(r.n)
	for i := 0; i < r.n; i++ {
		src := i + k
		if src >= 0 && src < r.n {
			out.bits[i] = r.bits[src]
		}
	}
	return out
}

func assertMatches(t *testing.T, r refBits, s Set) {
	t.Helper()
	require.Equal(t, r.n, s.Cap())
	for i := 0; i < r.n; i++ {
		require.Equalf(t, r.bits[i], s.Test(i), "bit %d", i)
	}
}

var capsUnderTest = []int{1, 63, 64, 65, 96, 127, 128, 129, 160, 169, 191, 192}

func TestLaneCorrectness_RandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, n := range capsUnderTest {
		n := n
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			r := newRef(n)
			s, err := New(n)
			require.NoError(t, err)

			for step := 0; step < 200; step++ {
				switch rng.Intn(7) {
				case 0: // set
					i := rng.Intn(n)
					r.bits[i] = true
					require.NoError(t, s.SetBit(i))
				case 1: // reset
					i := rng.Intn(n)
					r.bits[i] = false
					require.NoError(t, s.ResetBit(i))
				case 2: // flip
					i := rng.Intn(n)
					r.bits[i] = !r.bits[i]
					require.NoError(t, s.FlipBit(i))
				case 3: // left shift
					k := rng.Intn(5)
					r = r.lsh(k)
					s, err = s.Lsh(k)
					require.NoError(t, err)
				case 4: // right shift
					k := rng.Intn(5)
					r = r.rsh(k)
					s, err = s.Rsh(k)
					require.NoError(t, err)
				case 5: // union with a random set
					i := rng.Intn(n)
					other := newRef(n)
					other.bits[i] = true
					r2 := newRef(n)
					for j := range r.bits {
						r2.bits[j] = r.bits[j] || other.bits[j]
					}
					r = r2
					s = s.Union(other.toSet())
				case 6: // complement
					r2 := newRef(n)
					for j := range r.bits {
						r2.bits[j] = !r.bits[j]
					}
					r = r2
					s = s.Not()
				}
				assertMatches(t, r, s)
			}
		})
	}
}

func TestCanonicalization_NonFastOpsMaskHighBits(t *testing.T) {
	for _, n := range capsUnderTest {
		u, err := Universe(n)
		require.NoError(t, err)
		for lane := 0; lane < MaxLanes; lane++ {
			want := laneValidMask(n, lane)
			require.Equal(t, want, u.lanes[lane])
		}
	}
}

func TestCanonicalization_FastOpsNeedClean(t *testing.T) {
	n := 100
	u, err := Universe(n)
	require.NoError(t, err)

	fast := u.FastNot()
	clean := u.Not()
	require.Equal(t, clean, fast.Clean())

	fastShift := u.FastLsh(10)
	cleanShift, err := u.Lsh(10)
	require.NoError(t, err)
	require.Equal(t, cleanShift, fastShift.Clean())
}

func TestRoundTrip_FromUint64ToUint64(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v := rng.Uint64()
		s, err := FromUint64(64, v)
		require.NoError(t, err)
		back, err := s.ToUint64()
		require.NoError(t, err)
		require.Equal(t, v, back)
	}
}

func TestToUint64_OverflowBeyond64(t *testing.T) {
	s, err := FromList(128, []int{3, 70})
	require.NoError(t, err)
	_, err = s.ToUint64()
	require.ErrorIs(t, err, ErrOverflow)
}

func TestEnumerationOrder_AscendingAndComplete(t *testing.T) {
	s, err := FromList(200, []int{199, 1, 64, 63, 0, 128})
	require.NoError(t, err)
	elems := s.Elements()
	require.Equal(t, []int{0, 1, 63, 64, 128, 199}, elems)
	require.Equal(t, s.Count(), len(elems))
}

func TestPopCountIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for _, n := range capsUnderTest {
		idx := randomSubset(rng, n)
		s, err := FromList(n, idx)
		require.NoError(t, err)
		require.Equal(t, n, s.Count()+s.Not().Count())
	}
}

func TestMinMax_EmptySet(t *testing.T) {
	s, err := New(10)
	require.NoError(t, err)
	_, err = s.Min()
	require.ErrorIs(t, err, ErrEmptySet)
	_, err = s.Max()
	require.ErrorIs(t, err, ErrEmptySet)
}

func TestSetRange_NoOpWhenEqual(t *testing.T) {
	s, err := New(10)
	require.NoError(t, err)
	require.NoError(t, s.SetRange(5, 5))
	require.True(t, s.None())
}

func TestSetRange_OutOfBounds(t *testing.T) {
	s, err := New(10)
	require.NoError(t, err)
	require.ErrorIs(t, s.SetRange(3, 1), ErrOutOfRange)
	require.ErrorIs(t, s.SetRange(0, 11), ErrOutOfRange)
	require.ErrorIs(t, s.SetRange(-1, 5), ErrOutOfRange)
}

func TestDiff_IsIntersectionWithComplement(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	n := 129
	a, err := FromList(n, randomSubset(rng, n))
	require.NoError(t, err)
	b, err := FromList(n, randomSubset(rng, n))
	require.NoError(t, err)
	require.Equal(t, a.Intersect(b.Not()), a.Diff(b))
}

func TestRepeatBlock(t *testing.T) {
	// Five repetitions of a single bit at stride 3 over a 15-wide capacity
	// should be bits {0,3,6,9,12}.
	s, err := RepeatBlock(15, 1, 3, 5)
	require.NoError(t, err)
	require.Equal(t, []int{0, 3, 6, 9, 12}, s.Elements())
}

func randomSubset(rng *rand.Rand, n int) []int {
	var idx []int
	for i := 0; i < n; i++ {
		if rng.Intn(2) == 0 {
			idx = append(idx, i)
		}
	}
	return idx
}
