package prime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(max uint32, n int) []uint32 {
	var out []uint32
	for c := range Candidates(max) {
		out = append(out, c)
		if n > 0 && len(out) == n {
			break
		}
	}
	return out
}

func TestCandidatesAreOddAndBelowMax(t *testing.T) {
	require.Equal(t, []uint32{5, 7, 9, 11, 13, 15, 17, 19}, collect(20, 0))
	require.Equal(t, []uint32{5, 7, 9, 11, 13, 15, 17, 19}, collect(21, 0))
	require.Equal(t, []uint32{5, 7, 9, 11, 13, 15, 17, 19, 21}, collect(22, 0))
}

func TestCandidatesEmptyWhenMaxTooSmall(t *testing.T) {
	require.Empty(t, collect(5, 0))
	require.Empty(t, collect(3, 0))
}

func TestCandidatesUnboundedStartsAtFive(t *testing.T) {
	require.Equal(t, []uint32{5, 7, 9}, collect(0, 3))
}

func TestCandidatesRestartable(t *testing.T) {
	seq := Candidates(12)
	first := []uint32{}
	for c := range seq {
		first = append(first, c)
	}
	second := []uint32{}
	for c := range seq {
		second = append(second, c)
	}
	require.Equal(t, first, second)
}

func TestCandidatesStopsAtTopOfRange(t *testing.T) {
	var tail []uint32
	for c := range candidatesFrom(math.MaxUint32-6, math.MaxUint32) {
		tail = append(tail, c)
	}
	require.Equal(t, []uint32{math.MaxUint32 - 6, math.MaxUint32 - 4, math.MaxUint32 - 2}, tail)
}

func TestCandidatesNeverWrapsWithOddStart(t *testing.T) {
	var tail []uint32
	for c := range candidatesFrom(math.MaxUint32-1, math.MaxUint32) {
		tail = append(tail, c)
	}
	require.Equal(t, []uint32{math.MaxUint32 - 1}, tail)
}
