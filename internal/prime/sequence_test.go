package prime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSequenceSeeded(t *testing.T) {
	s := NewSequence()
	require.Equal(t, 1, s.Len())
	require.Equal(t, Seed, s.Last())
	require.Equal(t, []uint32{3}, s.Values())
}

func TestSequenceAppendKeepsOrder(t *testing.T) {
	s := NewSequence()
	require.NoError(t, s.Append(5))
	require.NoError(t, s.Append(7))
	require.Error(t, s.Append(7))
	require.Error(t, s.Append(4))
	require.Equal(t, []uint32{3, 5, 7}, s.Values())
	require.Equal(t, uint32(7), s.Last())
}

func TestSequenceTest(t *testing.T) {
	s := NewSequence()
	require.True(t, s.Test(5))
	require.True(t, s.Test(7))
	require.False(t, s.Test(9))
}
