package bloom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSizingClosedForm(t *testing.T) {
	m, k, err := Sizing(1000, 0.01)
	require.NoError(t, err)

	wantM := uint64(math.Ceil(1000 * -math.Log(0.01) / (math.Ln2 * math.Ln2)))
	wantK := uint8(math.Round(-math.Log(0.01) / math.Ln2))
	require.Equal(t, wantM, m)
	require.Equal(t, wantK, k)

	// Standard bounds for n=1000 at 1%: ~9.6 bits per element, 7 rounds.
	require.GreaterOrEqual(t, m, uint64(9000))
	require.LessOrEqual(t, m, uint64(9600))
	require.GreaterOrEqual(t, k, uint8(6))
	require.LessOrEqual(t, k, uint8(8))
}

func TestSizingMonotonicInN(t *testing.T) {
	prev := uint64(0)
	for n := uint64(1); n <= 100000; n *= 10 {
		m, _, err := Sizing(n, 0.01)
		require.NoError(t, err)
		require.GreaterOrEqual(t, m, prev)
		prev = m
	}
}

func TestSizingMonotonicInEps(t *testing.T) {
	prev := uint64(0)
	for _, eps := range []float64{0.5, 0.1, 0.05, 0.01, 0.001, 1e-6, 1e-9} {
		m, _, err := Sizing(1000, eps)
		require.NoError(t, err)
		require.Greater(t, m, prev)
		prev = m
	}
}

func TestSizingKAtLeastOne(t *testing.T) {
	// -ln(0.9)/ln(2) rounds to zero; k must still be 1.
	_, k, err := Sizing(10, 0.9)
	require.NoError(t, err)
	require.Equal(t, uint8(1), k)
}

func TestSizingRejectsBadParameters(t *testing.T) {
	for _, eps := range []float64{0, 1, -0.1, 1.5, math.NaN(), math.Inf(1)} {
		_, _, err := Sizing(100, eps)
		require.ErrorIs(t, err, ErrBadEps, "eps=%v", eps)
	}

	_, _, err := Sizing(0, 0.01)
	require.ErrorIs(t, err, ErrBadN)
}

func TestSizingKRange(t *testing.T) {
	// eps below 2^-255 derives k > 255, which no longer fits the uint8
	// round count.
	_, _, err := Sizing(10, 1e-80)
	require.ErrorIs(t, err, ErrKRange)
}

func TestWords(t *testing.T) {
	require.Equal(t, 0, Words(0))
	require.Equal(t, 1, Words(1))
	require.Equal(t, 1, Words(64))
	require.Equal(t, 2, Words(65))
	require.Equal(t, 15, Words(959))
}
