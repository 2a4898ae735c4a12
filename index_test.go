package bloom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func probeIndexes(sum uint64, k uint8, mBits uint64) []uint64 {
	base, step := splitSum(sum)
	out := make([]uint64, 0, k)
	for i := uint64(0); i < uint64(k); i++ {
		base += i * step
		out = append(out, base%mBits)
	}
	return out
}

func TestSplitSum(t *testing.T) {
	base, step := splitSum(0x0a75a91375b27d44)
	require.Equal(t, uint64(0x0a75a913), base)
	require.Equal(t, uint64(0x75b27d44), step)
}

func TestSetAndTestSumAgree(t *testing.T) {
	words := make([]uint64, Words(959))

	sum := uint64(0x0a75a91375b27d44)
	require.False(t, testSum(words, 959, 7, sum))

	setSum(words, 959, 7, sum)
	require.True(t, testSum(words, 959, 7, sum))

	for _, idx := range probeIndexes(sum, 7, 959) {
		require.True(t, testBit(words, idx))
	}
}

func TestProbeIndexesInRange(t *testing.T) {
	for _, sum := range []uint64{0, 1, 0x0a75a91375b27d44, 0x19a1d238fce6124f, ^uint64(0)} {
		for _, m := range []uint64{1, 63, 64, 959, 9586} {
			for _, idx := range probeIndexes(sum, 7, m) {
				require.Less(t, idx, m, "sum=%#x m=%d", sum, m)
			}
		}
	}
}

// A sum whose low half is zero collapses all k rounds onto one bit. The
// scheme keeps that degeneracy rather than patching it.
func TestZeroStepDegeneratesToOneIndex(t *testing.T) {
	sum := uint64(0xdeadbeef) << 32
	idxs := probeIndexes(sum, 7, 959)
	for _, idx := range idxs {
		require.Equal(t, idxs[0], idx)
	}

	// Setting that single bit is enough to match.
	words := make([]uint64, Words(959))
	setBit(words, idxs[0])
	require.True(t, testSum(words, 959, 7, sum))
}

func TestTestSumRequiresAllBits(t *testing.T) {
	words := make([]uint64, Words(959))
	sum := uint64(0x19a1d238fce6124f)

	setSum(words, 959, 7, sum)
	require.True(t, testSum(words, 959, 7, sum))

	// Knock out one probed bit; the sum must no longer match.
	idxs := probeIndexes(sum, 7, 959)
	last := idxs[len(idxs)-1]
	words[last>>6] &^= 1 << (last & 63)
	require.False(t, testSum(words, 959, 7, sum))
}
