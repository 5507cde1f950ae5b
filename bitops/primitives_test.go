package bitops

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLowestSet_AgreesWithDeBruijnFallback(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		w := rng.Uint64()
		if w == 0 {
			continue
		}
		require.Equal(t, LowestSet(w), lowestSetDeBruijn(w))
	}
}

func TestHighestSet_AgreesWithFloodFallback(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 10000; i++ {
		w := rng.Uint64()
		if w == 0 {
			continue
		}
		require.Equal(t, HighestSet(w), highestSetFlood(w))
	}
}

func TestPopCount_AgreesWithSWARFallback(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 10000; i++ {
		w := rng.Uint64()
		require.Equal(t, PopCount(w), popcountSWAR(w))
	}
}

func TestLowestSet_Known(t *testing.T) {
	require.Equal(t, 0, LowestSet(1))
	require.Equal(t, 3, LowestSet(0b1000))
	require.Equal(t, 63, LowestSet(1<<63))
}

func TestHighestSet_Known(t *testing.T) {
	require.Equal(t, 0, HighestSet(1))
	require.Equal(t, 3, HighestSet(0b1111))
	require.Equal(t, 63, HighestSet(1<<63))
}

func TestBitRange(t *testing.T) {
	m, err := BitRange(0, 3)
	require.NoError(t, err)
	require.Equal(t, uint64(0b1111), m)

	m, err = BitRange(2, 2)
	require.NoError(t, err)
	require.Equal(t, uint64(0b100), m)

	m, err = BitRange(0, 63)
	require.NoError(t, err)
	require.Equal(t, ^uint64(0), m)

	_, err = BitRange(5, 2)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = BitRange(0, 64)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = BitRange(-1, 3)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestPopCount_Identity(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		w := rng.Uint64()
		require.Equal(t, 64, PopCount(w)+PopCount(^w))
	}
}
